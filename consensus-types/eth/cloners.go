package eth

import (
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
)

// CopyFork copies the provided fork object.
func CopyFork(fork *Fork) *Fork {
	if fork == nil {
		return nil
	}
	return &Fork{
		PreviousVersion: bytesutil.SafeCopyBytes(fork.PreviousVersion),
		CurrentVersion:  bytesutil.SafeCopyBytes(fork.CurrentVersion),
		Epoch:           fork.Epoch,
	}
}

// CopyCheckpoint copies the provided checkpoint object.
func CopyCheckpoint(cp *Checkpoint) *Checkpoint {
	if cp == nil {
		return nil
	}
	return &Checkpoint{
		Epoch: cp.Epoch,
		Root:  bytesutil.SafeCopyBytes(cp.Root),
	}
}

// CopyBeaconBlockHeader copies the provided BeaconBlockHeader object.
func CopyBeaconBlockHeader(header *BeaconBlockHeader) *BeaconBlockHeader {
	if header == nil {
		return nil
	}
	return &BeaconBlockHeader{
		Slot:          header.Slot,
		ProposerIndex: header.ProposerIndex,
		ParentRoot:    bytesutil.SafeCopyBytes(header.ParentRoot),
		StateRoot:     bytesutil.SafeCopyBytes(header.StateRoot),
		BodyRoot:      bytesutil.SafeCopyBytes(header.BodyRoot),
	}
}

// CopyEth1Data copies the provided eth1data object.
func CopyEth1Data(data *Eth1Data) *Eth1Data {
	if data == nil {
		return nil
	}
	return &Eth1Data{
		DepositRoot:  bytesutil.SafeCopyBytes(data.DepositRoot),
		DepositCount: data.DepositCount,
		BlockHash:    bytesutil.SafeCopyBytes(data.BlockHash),
	}
}

// CopyValidator copies the provided validator.
func CopyValidator(val *Validator) *Validator {
	if val == nil {
		return nil
	}
	return &Validator{
		PublicKey:                  bytesutil.SafeCopyBytes(val.PublicKey),
		WithdrawalCredentials:      bytesutil.SafeCopyBytes(val.WithdrawalCredentials),
		EffectiveBalance:           val.EffectiveBalance,
		Slashed:                    val.Slashed,
		ActivationEligibilityEpoch: val.ActivationEligibilityEpoch,
		ActivationEpoch:            val.ActivationEpoch,
		ExitEpoch:                  val.ExitEpoch,
		WithdrawableEpoch:          val.WithdrawableEpoch,
	}
}

// CopyAttestationData copies the provided AttestationData object.
func CopyAttestationData(attData *AttestationData) *AttestationData {
	if attData == nil {
		return nil
	}
	return &AttestationData{
		Slot:            attData.Slot,
		CommitteeIndex:  attData.CommitteeIndex,
		BeaconBlockRoot: bytesutil.SafeCopyBytes(attData.BeaconBlockRoot),
		Source:          CopyCheckpoint(attData.Source),
		Target:          CopyCheckpoint(attData.Target),
	}
}

// CopyPendingAttestation copies the provided pending attestation object.
func CopyPendingAttestation(att *PendingAttestation) *PendingAttestation {
	if att == nil {
		return nil
	}
	return &PendingAttestation{
		AggregationBits: bytesutil.SafeCopyBytes(att.AggregationBits),
		Data:            CopyAttestationData(att.Data),
		InclusionDelay:  att.InclusionDelay,
		ProposerIndex:   att.ProposerIndex,
	}
}

// CopyPendingAttestationSlice copies the provided slice of pending attestation objects.
func CopyPendingAttestationSlice(input []*PendingAttestation) []*PendingAttestation {
	if input == nil {
		return nil
	}
	res := make([]*PendingAttestation, len(input))
	for i := 0; i < len(res); i++ {
		res[i] = CopyPendingAttestation(input[i])
	}
	return res
}

// CopySyncCommittee copies the provided sync committee object.
func CopySyncCommittee(data *SyncCommittee) *SyncCommittee {
	if data == nil {
		return nil
	}
	return &SyncCommittee{
		Pubkeys:         bytesutil.SafeCopy2dBytes(data.Pubkeys),
		AggregatePubkey: bytesutil.SafeCopyBytes(data.AggregatePubkey),
	}
}

// CopyValidatorSlice copies the provided slice of validators.
func CopyValidatorSlice(input []*Validator) []*Validator {
	if input == nil {
		return nil
	}
	res := make([]*Validator, len(input))
	for i := 0; i < len(res); i++ {
		res[i] = CopyValidator(input[i])
	}
	return res
}
