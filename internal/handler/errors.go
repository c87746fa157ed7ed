package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Player operation error messages
	ErrMsgRegisterFailed     = "Failed to register player"
	ErrMsgGetPlayerFailed    = "Failed to get player"
	ErrMsgGetProgressFailed  = "Failed to get progress"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgAwardXPFailed      = "Failed to award XP"

	// Crafting operation error messages
	ErrMsgGetRecipesFailed = "Failed to get recipes"
	ErrMsgCraftFailed      = "Failed to craft item"
	ErrMsgCheckCraftFailed = "Failed to check recipe"

	// Quest operation error messages
	ErrMsgGetQuestsFailed  = "Failed to get quests"
	ErrMsgClaimQuestFailed = "Failed to claim quest"

	// Cosmetics operation error messages
	ErrMsgGetThemesFailed = "Failed to get themes"
	ErrMsgGetSkinsFailed  = "Failed to get table skins"
	ErrMsgActivateFailed  = "Failed to activate cosmetic"
)

// User-facing messages for mapped domain errors
const (
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgPlayerNotFound      = "Player not found"
	ErrMsgPlayerAlreadyExists = "Username is already taken"
	ErrMsgRecipeNotFound      = "Recipe not found"
	ErrMsgQuestNotFound       = "Quest not found"
	ErrMsgQuestNotEligible    = "Quest requirements not met"
	ErrMsgQuestAlreadyClaimed = "Quest has already been claimed"
	ErrMsgThemeNotFound       = "Theme not found"
	ErrMsgSkinNotFound        = "Table skin not found"
	ErrMsgCosmeticLocked      = "Cosmetic is locked"
	ErrMsgGenericServerError  = "Something went wrong"
)
