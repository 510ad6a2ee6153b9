package domain

import (
	"encoding/hex"
)

// EncryptedField is a single sealed string value.
//
// The authentication tag is kept apart from the ciphertext so that each part
// can be stored in its own column.
type EncryptedField struct {
	Ciphertext []byte
	Nonce      []byte
	AuthTag    []byte
}

// EncodedField is the hex transport form of an EncryptedField.
type EncodedField struct {
	EncryptedData string `json:"encrypted_data"`
	IV            string `json:"iv"`
	AuthTag       string `json:"auth_tag"`
}

// Encode returns the hex transport form.
func (f EncryptedField) Encode() EncodedField {
	return EncodedField{
		EncryptedData: hex.EncodeToString(f.Ciphertext),
		IV:            hex.EncodeToString(f.Nonce),
		AuthTag:       hex.EncodeToString(f.AuthTag),
	}
}

// Decode parses the hex transport form. Malformed hex yields ErrIntegrity.
func (e EncodedField) Decode() (EncryptedField, error) {
	ciphertext, err := hex.DecodeString(e.EncryptedData)
	if err != nil {
		return EncryptedField{}, ErrIntegrity
	}
	nonce, err := hex.DecodeString(e.IV)
	if err != nil {
		return EncryptedField{}, ErrIntegrity
	}
	tag, err := hex.DecodeString(e.AuthTag)
	if err != nil {
		return EncryptedField{}, ErrIntegrity
	}
	return EncryptedField{Ciphertext: ciphertext, Nonce: nonce, AuthTag: tag}, nil
}
