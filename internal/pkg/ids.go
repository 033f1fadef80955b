package pkg

import "github.com/google/uuid"

func GeneratePlayerID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}
