package seed

const (
	ErrMsgFailedToReadSeed   = "failed to read seed file"
	ErrMsgFailedToParseSeed  = "failed to parse seed file"
	ErrMsgInvalidSeed        = "invalid seed file"
	ErrMsgFailedToSeedVendor = "failed to seed vendor"

	LogMsgSeedApplied = "Seed data applied"
)
