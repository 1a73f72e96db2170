package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
)

type Controller interface {
	Handle(presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

func AdaptRoute(controller Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		contentType := response.ContentType
		if contentType == "" {
			contentType = "application/json"
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	})
}
