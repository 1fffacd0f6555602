package constants

const (
	// User setting keys
	SettingUserName               = "user_name"
	SettingHasCompletedOnboarding = "has_completed_onboarding"
	SettingInstallID              = "install_id"

	// Default routine order index when unspecified
	DefaultOrderIndex = 99

	// Default weight unit
	DefaultWeightUnit = "kg"
)
