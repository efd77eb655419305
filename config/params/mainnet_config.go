package params

import (
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
)

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

// UseMainnetConfig for beacon chain services.
func UseMainnetConfig() {
	beaconConfig = MainnetConfig()
}

var mainnetBeaconConfig = &BeaconChainConfig{
	// Constants (non-configurable).
	GenesisSlot:         0,
	GenesisEpoch:        0,
	FarFutureEpoch:      1<<64 - 1,
	FarFutureSlot:       1<<64 - 1,
	BaseRewardsPerEpoch: 4,

	// Misc constant.
	TargetCommitteeSize:            128,
	MaxValidatorsPerCommittee:      2048,
	MaxCommitteesPerSlot:           64,
	MinPerEpochChurnLimit:          4,
	ChurnLimitQuotient:             1 << 16,
	ShuffleRoundCount:              90,
	MinGenesisActiveValidatorCount: 16384,
	MinGenesisTime:                 1606824000, // Dec 1, 2020, 12pm UTC.
	HysteresisQuotient:             4,
	HysteresisDownwardMultiplier:   1,
	HysteresisUpwardMultiplier:     5,

	// Gwei value constants.
	MinDepositAmount:          1 * 1e9,
	MaxEffectiveBalance:       32 * 1e9,
	EjectionBalance:           16 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,

	// Initial value constants.
	BLSWithdrawalPrefixByte: byte(0),
	ZeroHash:                [32]byte{},

	// Time parameter constants.
	GenesisDelay:                     604800, // 1 week.
	MinAttestationInclusionDelay:     1,
	SecondsPerSlot:                   12,
	SlotsPerEpoch:                    32,
	MinSeedLookahead:                 1,
	MaxSeedLookahead:                 4,
	EpochsPerEth1VotingPeriod:        64,
	SlotsPerHistoricalRoot:           8192,
	MinValidatorWithdrawabilityDelay: 256,
	ShardCommitteePeriod:             256,
	MinEpochsToInactivityPenalty:     4,
	Eth1FollowDistance:               2048,

	// State list length constants.
	EpochsPerHistoricalVector: 65536,
	EpochsPerSlashingsVector:  8192,
	HistoricalRootsLimit:      16777216,
	ValidatorRegistryLimit:    1099511627776,

	// Reward and penalty quotients constants.
	BaseRewardFactor:               64,
	WhistleBlowerRewardQuotient:    512,
	ProposerRewardQuotient:         8,
	InactivityPenaltyQuotient:      67108864,
	MinSlashingPenaltyQuotient:     128,
	ProportionalSlashingMultiplier: 1,

	// Max operations per block constants.
	MaxProposerSlashings: 16,
	MaxAttesterSlashings: 2,
	MaxAttestations:      128,
	MaxDeposits:          16,
	MaxVoluntaryExits:    16,

	// BLS domain values.
	DomainBeaconProposer: bytesutil.ToBytes4(bytesutil.Bytes4(0)),
	DomainBeaconAttester: bytesutil.ToBytes4(bytesutil.Bytes4(1)),
	DomainRandao:         bytesutil.ToBytes4(bytesutil.Bytes4(2)),
	DomainDeposit:        bytesutil.ToBytes4(bytesutil.Bytes4(3)),
	DomainVoluntaryExit:  bytesutil.ToBytes4(bytesutil.Bytes4(4)),
	DomainSyncCommittee:  bytesutil.ToBytes4(bytesutil.Bytes4(7)),

	// Fork related values.
	GenesisForkVersion: []byte{0, 0, 0, 0},
	AltairForkVersion:  []byte{1, 0, 0, 0},
	AltairForkEpoch:    74240, // Oct 27, 2021, 10:56:23am UTC.

	// Altair misc values.
	SyncCommitteeSize:            512,
	InactivityScoreBias:          4,
	InactivityScoreRecoveryRate:  16,
	EpochsPerSyncCommitteePeriod: 256,

	// Updated penalty values.
	InactivityPenaltyQuotientAltair:      3 * 1 << 24, // 50331648
	MinSlashingPenaltyQuotientAltair:     64,
	ProportionalSlashingMultiplierAltair: 2,

	// Participation flag indices and weights.
	TimelySourceFlagIndex: 0,
	TimelyTargetFlagIndex: 1,
	TimelyHeadFlagIndex:   2,
	TimelySourceWeight:    14,
	TimelyTargetWeight:    26,
	TimelyHeadWeight:      14,
	SyncRewardWeight:      2,
	ProposerWeight:        8,
	WeightDenominator:     64,

	// Deposit contract values.
	DepositChainID:         1, // Chain ID of eth1 mainnet.
	DepositNetworkID:       1, // Network ID of eth1 mainnet.
	DepositContractAddress: "0x00000000219ab540356cBB839Cbe05303d7705Fa",

	// Client identity values.
	GweiPerEth:                  1000000000,
	ConfigName:                  ConfigNames[Mainnet],
	BeaconStateFieldCount:       21,
	BeaconStateAltairFieldCount: 24,
}
