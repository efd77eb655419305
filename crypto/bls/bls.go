// Package bls implements a go-wrapper around a BLS12-381 library. Only the
// key operations needed for sync committee construction are exposed; signing
// and verification live with the block processor, outside this module.
package bls

import (
	"github.com/fredriksvantes/lodestar/crypto/bls/herumi"
	"github.com/fredriksvantes/lodestar/crypto/bls/iface"
)

// SecretKey represents a BLS secret or private key.
type SecretKey = iface.SecretKey

// PublicKey represents a BLS public key.
type PublicKey = iface.PublicKey

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (SecretKey, error) {
	return herumi.SecretKeyFromBytes(privKey)
}

// PublicKeyFromBytes creates a BLS public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return herumi.PublicKeyFromBytes(pubKey)
}

// AggregatePublicKeys aggregates the provided raw public keys into a single key.
func AggregatePublicKeys(pubs [][]byte) (PublicKey, error) {
	return herumi.AggregatePublicKeys(pubs)
}

// RandKey creates a new private key using a random input.
func RandKey() SecretKey {
	return herumi.RandKey()
}
