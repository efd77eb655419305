package eth_test

import (
	"testing"

	eth "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/prysmaticlabs/go-bitfield"
)

func TestValidator_RoundTrip(t *testing.T) {
	v := &eth.Validator{
		PublicKey:                  make([]byte, 48),
		WithdrawalCredentials:      make([]byte, 32),
		EffectiveBalance:           32 * 1e9,
		Slashed:                    true,
		ActivationEligibilityEpoch: 1,
		ActivationEpoch:            2,
		ExitEpoch:                  3,
		WithdrawableEpoch:          4,
	}
	v.PublicKey[0] = 0xaa
	enc, err := v.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, 121, len(enc))

	got := &eth.Validator{}
	require.NoError(t, got.UnmarshalSSZ(enc))
	assert.DeepEqual(t, v, got)
}

func TestCheckpoint_RoundTrip(t *testing.T) {
	c := &eth.Checkpoint{Epoch: 42, Root: make([]byte, 32)}
	c.Root[31] = 7
	enc, err := c.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, 40, len(enc))

	got := &eth.Checkpoint{}
	require.NoError(t, got.UnmarshalSSZ(enc))
	assert.DeepEqual(t, c, got)

	// HTR is stable for the same value.
	r1, err := c.HashTreeRoot()
	require.NoError(t, err)
	r2, err := got.HashTreeRoot()
	require.NoError(t, err)
	assert.DeepEqual(t, r1, r2)
}

func TestBeaconBlockHeader_RoundTrip(t *testing.T) {
	h := &eth.BeaconBlockHeader{
		Slot:          12,
		ProposerIndex: 33,
		ParentRoot:    make([]byte, 32),
		StateRoot:     make([]byte, 32),
		BodyRoot:      make([]byte, 32),
	}
	enc, err := h.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, 112, len(enc))
	got := &eth.BeaconBlockHeader{}
	require.NoError(t, got.UnmarshalSSZ(enc))
	assert.DeepEqual(t, h, got)
}

func TestPendingAttestation_RoundTrip(t *testing.T) {
	bl := bitfield.NewBitlist(8)
	bl.SetBitAt(0, true)
	bl.SetBitAt(5, true)
	p := &eth.PendingAttestation{
		AggregationBits: bl,
		Data: &eth.AttestationData{
			Slot:            3,
			CommitteeIndex:  1,
			BeaconBlockRoot: make([]byte, 32),
			Source:          &eth.Checkpoint{Epoch: 0, Root: make([]byte, 32)},
			Target:          &eth.Checkpoint{Epoch: 1, Root: make([]byte, 32)},
		},
		InclusionDelay: 1,
		ProposerIndex:  9,
	}
	enc, err := p.MarshalSSZ()
	require.NoError(t, err)
	got := &eth.PendingAttestation{}
	require.NoError(t, got.UnmarshalSSZ(enc))
	assert.DeepEqual(t, p, got)
}

func TestPendingAttestation_Unmarshal_BadSize(t *testing.T) {
	got := &eth.PendingAttestation{}
	require.ErrorContains(t, "incorrect size", got.UnmarshalSSZ([]byte{1, 2, 3}))
}

func TestSyncCommittee_RoundTrip(t *testing.T) {
	pubkeys := make([][]byte, 512)
	for i := range pubkeys {
		pubkeys[i] = make([]byte, 48)
		pubkeys[i][0] = byte(i)
	}
	s := &eth.SyncCommittee{
		Pubkeys:         pubkeys,
		AggregatePubkey: make([]byte, 48),
	}
	enc, err := s.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, 24624, len(enc))
	got := &eth.SyncCommittee{}
	require.NoError(t, got.UnmarshalSSZ(enc))
	assert.DeepEqual(t, s, got)
}

func TestFork_RoundTrip(t *testing.T) {
	f := &eth.Fork{
		PreviousVersion: []byte{0, 0, 0, 0},
		CurrentVersion:  []byte{1, 0, 0, 0},
		Epoch:           55,
	}
	enc, err := f.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, 16, len(enc))
	got := &eth.Fork{}
	require.NoError(t, got.UnmarshalSSZ(enc))
	assert.DeepEqual(t, f, got)
}
