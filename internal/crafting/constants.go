package crafting

// Craft-refusal reason strings returned to callers in CraftCheck.Reason.
// Clients display these verbatim, so treat them as part of the API.
const (
	ReasonLevelRequiredFmt   = "Level %d required"
	ReasonMissingIngredients = "Missing required ingredients"
)
