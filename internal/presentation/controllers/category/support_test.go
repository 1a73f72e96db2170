package category

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
)

func makeJSONRequest(t *testing.T, method string, target string, body any, userId string) presentationProtocols.HttpRequest {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if userId != "" {
		req.Header.Set("UserId", userId)
	}

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeBody(t *testing.T, response *presentationProtocols.HttpResponse, out any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}
