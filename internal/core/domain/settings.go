package domain

// DefaultSettingsFile is the settings file name used when none is configured.
const DefaultSettingsFile = ".settings.dat"

// DefaultProfile is the AWS profile used when no profile has been selected.
const DefaultProfile = "default"

// Value is the set of Go types a stored setting may carry.
type Value interface {
	~bool | ~string
}

// Key identifies a stored setting together with the type of its value.
// Keys can only be constructed inside this package, so the set of
// settings is closed.
type Key[T Value] struct {
	name string
}

// Name returns the key as it is written to the backend.
func (k Key[T]) Name() string {
	return k.name
}

// String returns the key name.
func (k Key[T]) String() string {
	return k.name
}

// Known settings keys.
var (
	// IsEditMode reports whether the UI is in edit mode.
	IsEditMode = Key[bool]{name: "isEditMode"}

	// SelectedAwsProfile is the AWS profile used for bucket listings.
	SelectedAwsProfile = Key[string]{name: "selectedAwsProfile"}
)

// KeyKind describes the value type of a stored setting.
type KeyKind string

// Available key kinds.
const (
	KeyKindBool   KeyKind = "bool"
	KeyKindString KeyKind = "string"
)

// KeyInfo describes a settings key for callers that only have its name,
// such as the command line.
type KeyInfo struct {
	Name        string
	Kind        KeyKind
	Description string
}

// AllKeys returns every known settings key.
func AllKeys() []KeyInfo {
	return []KeyInfo{
		{Name: IsEditMode.Name(), Kind: KeyKindBool, Description: "Edit mode enabled"},
		{Name: SelectedAwsProfile.Name(), Kind: KeyKindString, Description: "Selected AWS profile"},
	}
}

// LookupKey returns the key info for name.
func LookupKey(name string) (KeyInfo, bool) {
	for _, k := range AllKeys() {
		if k.Name == name {
			return k, true
		}
	}
	return KeyInfo{}, false
}

// Settings is a snapshot of all stored settings with defaults applied.
type Settings struct {
	// EditMode reports whether edit mode is enabled.
	EditMode bool

	// SelectedProfile is the AWS profile in use.
	SelectedProfile string
}

// DefaultSettings returns the settings used before anything is stored.
func DefaultSettings() Settings {
	return Settings{
		EditMode:        false,
		SelectedProfile: DefaultProfile,
	}
}
