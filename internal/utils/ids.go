package utils

import "math/rand" // Random source for public IDs

// Alphanumeric alphabet for public IDs
const publicIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GeneratePublicID returns a random 10-character alphanumeric public ID
func GeneratePublicID() string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = publicIDAlphabet[rand.Intn(len(publicIDAlphabet))] // Random character
	}
	return string(b)
}
