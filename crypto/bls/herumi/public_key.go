package herumi

import (
	"github.com/fredriksvantes/lodestar/crypto/bls/iface"
	bls12 "github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
)

// PublicKey used in the BLS signature scheme.
type PublicKey struct {
	p *bls12.PublicKey
}

// PublicKeyFromBytes creates a BLS public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (iface.PublicKey, error) {
	if len(pubKey) != 48 {
		return nil, errors.Errorf("public key must be %d bytes", 48)
	}
	p := &bls12.PublicKey{}
	err := p.Deserialize(pubKey)
	if err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into public key")
	}
	pubKeyObj := &PublicKey{p: p}
	return pubKeyObj, nil
}

// AggregatePublicKeys aggregates the provided raw public keys into a single key.
func AggregatePublicKeys(pubs [][]byte) (iface.PublicKey, error) {
	if len(pubs) == 0 {
		return nil, errors.New("nil or empty public keys")
	}
	p, err := PublicKeyFromBytes(pubs[0])
	if err != nil {
		return nil, err
	}
	agg, ok := p.(*PublicKey)
	if !ok {
		return nil, errors.New("invalid public key type")
	}
	for _, k := range pubs[1:] {
		pubkey, err := PublicKeyFromBytes(k)
		if err != nil {
			return nil, err
		}
		agg = agg.Aggregate(pubkey).(*PublicKey)
	}
	return agg, nil
}

// Marshal a public key into a BigEndian byte slice.
func (p *PublicKey) Marshal() []byte {
	return p.p.Serialize()
}

// Copy the public key to a new pointer reference.
func (p *PublicKey) Copy() iface.PublicKey {
	np := *p.p
	return &PublicKey{p: &np}
}

// Aggregate two public keys.
func (p *PublicKey) Aggregate(p2 iface.PublicKey) iface.PublicKey {
	p.p.Add(p2.(*PublicKey).p)
	return p
}
