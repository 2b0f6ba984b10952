package host

// Host class names for the core field classes.
const (
	ClassAssets       = `craft\fields\Assets`
	ClassCategories   = `craft\fields\Categories`
	ClassCheckboxes   = `craft\fields\Checkboxes`
	ClassColor        = `craft\fields\Color`
	ClassCountry      = `craft\fields\Country`
	ClassDate         = `craft\fields\Date`
	ClassDropdown     = `craft\fields\Dropdown`
	ClassEmail        = `craft\fields\Email`
	ClassEntries      = `craft\fields\Entries`
	ClassLightSwitch  = `craft\fields\LightSwitch`
	ClassMatrix       = `craft\fields\Matrix`
	ClassMissingField = `craft\fields\MissingField`
	ClassMoney        = `craft\fields\Money`
	ClassMultiSelect  = `craft\fields\MultiSelect`
	ClassNumber       = `craft\fields\Number`
	ClassPlainText    = `craft\fields\PlainText`
	ClassRadioButtons = `craft\fields\RadioButtons`
	ClassTable        = `craft\fields\Table`
	ClassTags         = `craft\fields\Tags`
	ClassTime         = `craft\fields\Time`
	ClassURL          = `craft\fields\Url`
	ClassUsers        = `craft\fields\Users`
)

// Host class names for plugin and module field classes.
const (
	ClassBlurhash   = `modules\lucasmodule\fields\BlurhashField`
	ClassEmbed      = `modules\embedsmodule\fields\Embed`
	ClassMap        = `ether\simplemap\fields\MapField`
	ClassPosition   = `rias\positionfieldtype\fields\Position`
	ClassRedactor   = `craft\redactor\Field`
	ClassSuperTable = `verbb\supertable\fields\SuperTableField`
)

type Assets struct {
	Base     `yaml:",inline"`
	Relation `yaml:",inline"`

	AllowedKinds      []string `json:"allowedKinds,omitempty" yaml:"allowedKinds,omitempty"`
	RestrictLocation  bool     `json:"restrictLocation,omitempty" yaml:"restrictLocation,omitempty"`
	DefaultUploadPath string   `json:"defaultUploadLocationSubpath,omitempty" yaml:"defaultUploadLocationSubpath,omitempty"`
}

func (*Assets) Class() string { return ClassAssets }

type Categories struct {
	Base     `yaml:",inline"`
	Relation `yaml:",inline"`

	BranchLimit int `json:"branchLimit,omitempty" yaml:"branchLimit,omitempty"`
}

func (*Categories) Class() string { return ClassCategories }

type Checkboxes struct {
	Base      `yaml:",inline"`
	OptionSet `yaml:",inline"`
}

func (*Checkboxes) Class() string { return ClassCheckboxes }

// Color stores a hex color such as #ff0000.
type Color struct {
	Base `yaml:",inline"`

	DefaultColor string `json:"defaultColor,omitempty" yaml:"defaultColor,omitempty"`
}

func (*Color) Class() string { return ClassColor }

// Country stores an ISO 3166-1 alpha-2 code.
type Country struct {
	Base `yaml:",inline"`
}

func (*Country) Class() string { return ClassCountry }

type Date struct {
	Base `yaml:",inline"`

	ShowDate     bool `json:"showDate,omitempty" yaml:"showDate,omitempty"`
	ShowTime     bool `json:"showTime,omitempty" yaml:"showTime,omitempty"`
	ShowTimeZone bool `json:"showTimeZone,omitempty" yaml:"showTimeZone,omitempty"`
}

func (*Date) Class() string { return ClassDate }

type Dropdown struct {
	Base      `yaml:",inline"`
	OptionSet `yaml:",inline"`
}

func (*Dropdown) Class() string { return ClassDropdown }

type Email struct {
	Base `yaml:",inline"`

	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

func (*Email) Class() string { return ClassEmail }

type Entries struct {
	Base     `yaml:",inline"`
	Relation `yaml:",inline"`
}

func (*Entries) Class() string { return ClassEntries }

type LightSwitch struct {
	Base `yaml:",inline"`

	Default  bool   `json:"default,omitempty" yaml:"default,omitempty"`
	OnLabel  string `json:"onLabel,omitempty" yaml:"onLabel,omitempty"`
	OffLabel string `json:"offLabel,omitempty" yaml:"offLabel,omitempty"`
}

func (*LightSwitch) Class() string { return ClassLightSwitch }

type Matrix struct {
	Base `yaml:",inline"`

	EntryTypes []string `json:"entryTypes,omitempty" yaml:"entryTypes,omitempty"`
	MinEntries int      `json:"minEntries,omitempty" yaml:"minEntries,omitempty"`
	MaxEntries int      `json:"maxEntries,omitempty" yaml:"maxEntries,omitempty"`
}

func (*Matrix) Class() string { return ClassMatrix }

// MissingField stands in for a field whose class is no longer installed on
// the host. ExpectedType names the class the host could not load.
type MissingField struct {
	Base `yaml:",inline"`

	ExpectedType string `json:"expectedType,omitempty" yaml:"expectedType,omitempty"`
}

func (*MissingField) Class() string { return ClassMissingField }

type Money struct {
	Base `yaml:",inline"`

	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Min      *int64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *int64 `json:"max,omitempty" yaml:"max,omitempty"`
}

func (*Money) Class() string { return ClassMoney }

type MultiSelect struct {
	Base      `yaml:",inline"`
	OptionSet `yaml:",inline"`
}

func (*MultiSelect) Class() string { return ClassMultiSelect }

type Number struct {
	Base `yaml:",inline"`

	Decimals int      `json:"decimals,omitempty" yaml:"decimals,omitempty"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Prefix   string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix   string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

func (*Number) Class() string { return ClassNumber }

type PlainText struct {
	Base `yaml:",inline"`

	Multiline   bool   `json:"multiline,omitempty" yaml:"multiline,omitempty"`
	CharLimit   int    `json:"charLimit,omitempty" yaml:"charLimit,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

func (*PlainText) Class() string { return ClassPlainText }

type RadioButtons struct {
	Base      `yaml:",inline"`
	OptionSet `yaml:",inline"`
}

func (*RadioButtons) Class() string { return ClassRadioButtons }

type Table struct {
	Base `yaml:",inline"`

	Columns []Column `json:"columns,omitempty" yaml:"columns,omitempty"`
	MinRows int      `json:"minRows,omitempty" yaml:"minRows,omitempty"`
	MaxRows int      `json:"maxRows,omitempty" yaml:"maxRows,omitempty"`
}

func (*Table) Class() string { return ClassTable }

type Tags struct {
	Base     `yaml:",inline"`
	Relation `yaml:",inline"`
}

func (*Tags) Class() string { return ClassTags }

type Time struct {
	Base `yaml:",inline"`

	MinuteIncrement int `json:"minuteIncrement,omitempty" yaml:"minuteIncrement,omitempty"`
}

func (*Time) Class() string { return ClassTime }

type URL struct {
	Base `yaml:",inline"`

	Types []string `json:"types,omitempty" yaml:"types,omitempty"`
}

func (*URL) Class() string { return ClassURL }

type Users struct {
	Base     `yaml:",inline"`
	Relation `yaml:",inline"`
}

func (*Users) Class() string { return ClassUsers }

// Blurhash stores the blurhash placeholder string computed for an asset.
type Blurhash struct {
	Base `yaml:",inline"`

	AssetField string `json:"assetField,omitempty" yaml:"assetField,omitempty"`
}

func (*Blurhash) Class() string { return ClassBlurhash }

// Embed stores an oEmbed URL and the cached provider payload.
type Embed struct {
	Base `yaml:",inline"`

	Providers []string `json:"providers,omitempty" yaml:"providers,omitempty"`
}

func (*Embed) Class() string { return ClassEmbed }

type Map struct {
	Base `yaml:",inline"`

	Lat  float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lng  float64 `json:"lng,omitempty" yaml:"lng,omitempty"`
	Zoom int     `json:"zoom,omitempty" yaml:"zoom,omitempty"`
}

func (*Map) Class() string { return ClassMap }

type Position struct {
	Base `yaml:",inline"`

	Options map[string]bool `json:"options,omitempty" yaml:"options,omitempty"`
	Default string          `json:"default,omitempty" yaml:"default,omitempty"`
}

func (*Position) Class() string { return ClassPosition }

// Redactor holds rich text markup.
type Redactor struct {
	Base `yaml:",inline"`

	RedactorConfig string `json:"redactorConfig,omitempty" yaml:"redactorConfig,omitempty"`
	PurifyHTML     bool   `json:"purifyHtml,omitempty" yaml:"purifyHtml,omitempty"`
}

func (*Redactor) Class() string { return ClassRedactor }

type SuperTable struct {
	Base `yaml:",inline"`

	StaticField bool `json:"staticField,omitempty" yaml:"staticField,omitempty"`
	MinRows     int  `json:"minRows,omitempty" yaml:"minRows,omitempty"`
	MaxRows     int  `json:"maxRows,omitempty" yaml:"maxRows,omitempty"`
}

func (*SuperTable) Class() string { return ClassSuperTable }

// Unsupported is a field whose host class has no Go mirror. The raw class
// name and settings are preserved for callers that register their own
// classification rules.
type Unsupported struct {
	Base `yaml:",inline"`

	ClassName string         `json:"type" yaml:"type"`
	Settings  map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`
}

func (u *Unsupported) Class() string {
	if u == nil {
		return ""
	}
	return NormalizeClass(u.ClassName)
}
