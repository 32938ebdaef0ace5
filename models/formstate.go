package models

// Weekday tags match the gateway's business-hours keys.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// AllWeekdays lists the seven keys in display order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimeSlot is one of the fixed selectable business-hour windows.
type TimeSlot string

const (
	SlotMorning       TimeSlot = "9AM - 11AM"
	SlotLateMorning   TimeSlot = "11AM - 1PM"
	SlotAfternoon     TimeSlot = "1PM - 3PM"
	SlotLateAfternoon TimeSlot = "3PM - 5PM"
)

// AllTimeSlots lists the selectable windows in display order.
var AllTimeSlots = []TimeSlot{SlotMorning, SlotLateMorning, SlotAfternoon, SlotLateAfternoon}

// Role tags accepted by the gateway.
type Role string

const (
	RoleFarmer Role = "farmer"
)

// LoginType distinguishes email signups from social ones.
type LoginType string

const (
	LoginTypeEmail    LoginType = "email"
	LoginTypeGoogle   LoginType = "google"
	LoginTypeApple    LoginType = "apple"
	LoginTypeFacebook LoginType = "facebook"
)

// UserSection holds the account-creation step's fields.
type UserSection struct {
	FullName        string
	Password        string
	ConfirmPassword string
	Email           string
	Phone           string
	Role            Role
	DeviceToken     string
	LoginType       LoginType
	SocialID        string
}

// BusinessInfoSection holds the farm/business details collected on the
// second step. RegistrationProofRef stays empty until the verification
// step attaches a document.
type BusinessInfoSection struct {
	BusinessName         string
	InformalName         string
	Address              string
	City                 string
	State                string
	ZipCode              string
	RegistrationProofRef string
}

// VerificationSection holds the verification step's fields.
type VerificationSection struct {
	IsFileAttached bool
	OTP            string
}

// BusinessHours maps each weekday to its selected time slots.
type BusinessHours map[Weekday][]TimeSlot

// FormState is the single aggregate a signup wizard session accumulates.
// It is only ever mutated through the FormStore.
type FormState struct {
	User          UserSection
	BusinessInfo  BusinessInfoSection
	Verification  VerificationSection
	BusinessHours BusinessHours
}

// DefaultFormState returns the all-empty aggregate a fresh wizard
// session starts from. Every weekday is present with no slots selected.
func DefaultFormState() FormState {
	hours := make(BusinessHours, len(AllWeekdays))
	for _, day := range AllWeekdays {
		hours[day] = []TimeSlot{}
	}
	return FormState{
		User: UserSection{
			Role:      RoleFarmer,
			LoginType: LoginTypeEmail,
		},
		BusinessHours: hours,
	}
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing the slot slices.
func (f FormState) Clone() FormState {
	out := f
	out.BusinessHours = make(BusinessHours, len(f.BusinessHours))
	for day, slots := range f.BusinessHours {
		copied := make([]TimeSlot, len(slots))
		copy(copied, slots)
		out.BusinessHours[day] = copied
	}
	return out
}
