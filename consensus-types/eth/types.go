// Package eth defines the consensus containers of the beacon chain: the
// validator registry entry, checkpoints, attestation records, sync
// committees, and the phase 0 and Altair beacon states. The SSZ encodings
// live in the *_encoding.go files alongside.
package eth

import (
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/go-bitfield"
)

// Fork structure used for indicating beacon chain versioning and forks.
type Fork struct {
	PreviousVersion []byte      `json:"previous_version" ssz-size:"4"`
	CurrentVersion  []byte      `json:"current_version" ssz-size:"4"`
	Epoch           types.Epoch `json:"epoch"`
}

// Checkpoint roots, both epoch and block root, for casper FFG finalization.
type Checkpoint struct {
	Epoch types.Epoch `json:"epoch"`
	Root  []byte      `json:"root" ssz-size:"32"`
}

// BeaconBlockHeader of the latest processed block, with the state root zeroed
// until the slot closes.
type BeaconBlockHeader struct {
	Slot          types.Slot           `json:"slot"`
	ProposerIndex types.ValidatorIndex `json:"proposer_index"`
	ParentRoot    []byte               `json:"parent_root" ssz-size:"32"`
	StateRoot     []byte               `json:"state_root" ssz-size:"32"`
	BodyRoot      []byte               `json:"body_root" ssz-size:"32"`
}

// Eth1Data tracking the follow state of the deposit chain.
type Eth1Data struct {
	DepositRoot  []byte `json:"deposit_root" ssz-size:"32"`
	DepositCount uint64 `json:"deposit_count"`
	BlockHash    []byte `json:"block_hash" ssz-size:"32"`
}

// Validator registry entry. Entries are never removed from the registry,
// only mutated.
type Validator struct {
	PublicKey                  []byte      `json:"public_key" ssz-size:"48"`
	WithdrawalCredentials      []byte      `json:"withdrawal_credentials" ssz-size:"32"`
	EffectiveBalance           uint64      `json:"effective_balance"`
	Slashed                    bool        `json:"slashed"`
	ActivationEligibilityEpoch types.Epoch `json:"activation_eligibility_epoch"`
	ActivationEpoch            types.Epoch `json:"activation_epoch"`
	ExitEpoch                  types.Epoch `json:"exit_epoch"`
	WithdrawableEpoch          types.Epoch `json:"withdrawable_epoch"`
}

// AttestationData is the slot/committee scoped vote carried by attestations.
type AttestationData struct {
	Slot            types.Slot           `json:"slot"`
	CommitteeIndex  types.CommitteeIndex `json:"committee_index"`
	BeaconBlockRoot []byte               `json:"beacon_block_root" ssz-size:"32"`
	Source          *Checkpoint          `json:"source"`
	Target          *Checkpoint          `json:"target"`
}

// PendingAttestation is an attestation waiting for epoch processing in the
// phase 0 state.
type PendingAttestation struct {
	AggregationBits bitfield.Bitlist     `json:"aggregation_bits" ssz-max:"2048"`
	Data            *AttestationData     `json:"data"`
	InclusionDelay  types.Slot           `json:"inclusion_delay"`
	ProposerIndex   types.ValidatorIndex `json:"proposer_index"`
}

// SyncCommittee serializes the validators in the current/next sync committee
// along with their aggregated public key.
type SyncCommittee struct {
	Pubkeys         [][]byte `json:"pubkeys" ssz-size:"512,48"`
	AggregatePubkey []byte   `json:"aggregate_pubkey" ssz-size:"48"`
}

// HistoricalBatch accumulates block and state roots for the historical roots
// list once every SLOTS_PER_HISTORICAL_ROOT slots.
type HistoricalBatch struct {
	BlockRoots [][]byte `json:"block_roots" ssz-size:"8192,32"`
	StateRoots [][]byte `json:"state_roots" ssz-size:"8192,32"`
}

// BeaconState is the phase 0 beacon chain state.
type BeaconState struct {
	GenesisTime                 uint64                `json:"genesis_time"`
	GenesisValidatorsRoot       []byte                `json:"genesis_validators_root" ssz-size:"32"`
	Slot                        types.Slot            `json:"slot"`
	Fork                        *Fork                 `json:"fork"`
	LatestBlockHeader           *BeaconBlockHeader    `json:"latest_block_header"`
	BlockRoots                  [][]byte              `json:"block_roots" ssz-size:"8192,32"`
	StateRoots                  [][]byte              `json:"state_roots" ssz-size:"8192,32"`
	HistoricalRoots             [][]byte              `json:"historical_roots" ssz-size:"?,32" ssz-max:"16777216"`
	Eth1Data                    *Eth1Data             `json:"eth1_data"`
	Eth1DataVotes               []*Eth1Data           `json:"eth1_data_votes" ssz-max:"2048"`
	Eth1DepositIndex            uint64                `json:"eth1_deposit_index"`
	Validators                  []*Validator          `json:"validators" ssz-max:"1099511627776"`
	Balances                    []uint64              `json:"balances" ssz-max:"1099511627776"`
	RandaoMixes                 [][]byte              `json:"randao_mixes" ssz-size:"65536,32"`
	Slashings                   []uint64              `json:"slashings" ssz-size:"8192"`
	PreviousEpochAttestations   []*PendingAttestation `json:"previous_epoch_attestations" ssz-max:"4096"`
	CurrentEpochAttestations    []*PendingAttestation `json:"current_epoch_attestations" ssz-max:"4096"`
	JustificationBits           bitfield.Bitvector4   `json:"justification_bits" ssz-size:"1"`
	PreviousJustifiedCheckpoint *Checkpoint           `json:"previous_justified_checkpoint"`
	CurrentJustifiedCheckpoint  *Checkpoint           `json:"current_justified_checkpoint"`
	FinalizedCheckpoint         *Checkpoint           `json:"finalized_checkpoint"`
}

// BeaconStateAltair is the Altair beacon chain state. Pending attestations
// are replaced by per-validator participation bytes, and inactivity scores
// plus the sync committees are appended.
type BeaconStateAltair struct {
	GenesisTime                 uint64              `json:"genesis_time"`
	GenesisValidatorsRoot       []byte              `json:"genesis_validators_root" ssz-size:"32"`
	Slot                        types.Slot          `json:"slot"`
	Fork                        *Fork               `json:"fork"`
	LatestBlockHeader           *BeaconBlockHeader  `json:"latest_block_header"`
	BlockRoots                  [][]byte            `json:"block_roots" ssz-size:"8192,32"`
	StateRoots                  [][]byte            `json:"state_roots" ssz-size:"8192,32"`
	HistoricalRoots             [][]byte            `json:"historical_roots" ssz-size:"?,32" ssz-max:"16777216"`
	Eth1Data                    *Eth1Data           `json:"eth1_data"`
	Eth1DataVotes               []*Eth1Data         `json:"eth1_data_votes" ssz-max:"2048"`
	Eth1DepositIndex            uint64              `json:"eth1_deposit_index"`
	Validators                  []*Validator        `json:"validators" ssz-max:"1099511627776"`
	Balances                    []uint64            `json:"balances" ssz-max:"1099511627776"`
	RandaoMixes                 [][]byte            `json:"randao_mixes" ssz-size:"65536,32"`
	Slashings                   []uint64            `json:"slashings" ssz-size:"8192"`
	PreviousEpochParticipation  []byte              `json:"previous_epoch_participation" ssz-max:"1099511627776"`
	CurrentEpochParticipation   []byte              `json:"current_epoch_participation" ssz-max:"1099511627776"`
	JustificationBits           bitfield.Bitvector4 `json:"justification_bits" ssz-size:"1"`
	PreviousJustifiedCheckpoint *Checkpoint         `json:"previous_justified_checkpoint"`
	CurrentJustifiedCheckpoint  *Checkpoint         `json:"current_justified_checkpoint"`
	FinalizedCheckpoint         *Checkpoint         `json:"finalized_checkpoint"`
	InactivityScores            []uint64            `json:"inactivity_scores" ssz-max:"1099511627776"`
	CurrentSyncCommittee        *SyncCommittee      `json:"current_sync_committee"`
	NextSyncCommittee           *SyncCommittee      `json:"next_sync_committee"`
}
