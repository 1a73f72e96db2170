package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnvFile(filename string) {
	if err := godotenv.Load(filename); err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Printf("could not load %s: %v", filename, err)
	}
}
