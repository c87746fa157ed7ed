package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Inventory Constants
const (
	// EmptyInventoryJSON is the default JSON structure for a new/empty inventory
	EmptyInventoryJSON = `{"slots": []}`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgInvalidPlayerID            = "invalid player id"
	ErrMsgFailedToInsertPlayer       = "failed to insert player"
	ErrMsgFailedToGetPlayer          = "failed to get player"
	ErrMsgFailedToUpdatePlayerXP     = "failed to update player xp"
	ErrMsgFailedToGetInventory       = "failed to get inventory"
	ErrMsgFailedToUpdateInventory    = "failed to update inventory"
	ErrMsgFailedToGetCosmetics       = "failed to get cosmetics"
	ErrMsgFailedToUpdateCosmetics    = "failed to update cosmetics"
	ErrMsgFailedToGetQuestClaims     = "failed to get quest claims"
	ErrMsgFailedToMarkQuestClaimed   = "failed to mark quest claimed"
	ErrMsgFailedToUnmarshalInventory = "failed to unmarshal inventory"
	ErrMsgFailedToUnmarshalCosmetics = "failed to unmarshal cosmetics"
)
