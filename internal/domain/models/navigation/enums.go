package navigation

// HomePage selects a page of the home screen when no document is addressed.
type HomePage string

const (
	HomePageAll       HomePage = "all"
	HomePageWorkspace HomePage = "workspace"
	HomePageTrash     HomePage = "trash"
)

// OpenMode is the mode a document is opened in.
type OpenMode string

const (
	OpenModeDefault OpenMode = "default"
	OpenModeView    OpenMode = "view"
	OpenModeFork    OpenMode = "fork"
)

// BillingPage identifies the billing page or one of its sub-pages.
type BillingPage string

const (
	BillingPageBilling BillingPage = "billing"
	BillingPagePayment BillingPage = "payment"
	BillingPagePlans   BillingPage = "plans"
)

// WelcomePage identifies a page of the onboarding flow.
type WelcomePage string

const (
	WelcomePageUser          WelcomePage = "user"
	WelcomePageInfo          WelcomePage = "info"
	WelcomePageTeams         WelcomePage = "teams"
	WelcomePageSignup        WelcomePage = "signup"
	WelcomePageVerify        WelcomePage = "verify"
	WelcomePageSelectAccount WelcomePage = "select-account"
)

// BillingTask is a pending billing action carried in the query string.
type BillingTask string

const (
	BillingTaskSignUp        BillingTask = "signUp"
	BillingTaskSignUpLite    BillingTask = "signUpLite"
	BillingTaskUpdateDomain  BillingTask = "updateDomain"
	BillingTaskUpdatePlan    BillingTask = "updatePlan"
	BillingTaskAddCard       BillingTask = "addCard"
	BillingTaskUpdateCard    BillingTask = "updateCard"
	BillingTaskUpdateAddress BillingTask = "updateAddress"
)

// InterfaceStyle selects how much of the application chrome is shown.
type InterfaceStyle string

const (
	InterfaceStyleLight InterfaceStyle = "light"
	InterfaceStyleFull  InterfaceStyle = "full"
)

var (
	homePages = []HomePage{HomePageAll, HomePageWorkspace, HomePageTrash}
	openModes = []OpenMode{OpenModeDefault, OpenModeView, OpenModeFork}

	billingPages = []BillingPage{BillingPageBilling, BillingPagePayment, BillingPagePlans}

	welcomePages = []WelcomePage{
		WelcomePageUser, WelcomePageInfo, WelcomePageTeams,
		WelcomePageSignup, WelcomePageVerify, WelcomePageSelectAccount,
	}

	billingTasks = []BillingTask{
		BillingTaskSignUp, BillingTaskSignUpLite, BillingTaskUpdateDomain,
		BillingTaskUpdatePlan, BillingTaskAddCard, BillingTaskUpdateCard,
		BillingTaskUpdateAddress,
	}

	interfaceStyles = []InterfaceStyle{InterfaceStyleLight, InterfaceStyleFull}
)

// parseClosed returns the member of set equal to s.
func parseClosed[T ~string](set []T, s string) (T, bool) {
	for _, v := range set {
		if string(v) == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ParseHomePage returns the home page named by s, if any.
func ParseHomePage(s string) (HomePage, bool) { return parseClosed(homePages, s) }

// ParseOpenMode returns the open mode named by s, if any.
func ParseOpenMode(s string) (OpenMode, bool) { return parseClosed(openModes, s) }

// ParseBillingPage returns the billing page named by s, if any.
func ParseBillingPage(s string) (BillingPage, bool) { return parseClosed(billingPages, s) }

// ParseWelcomePage returns the welcome page named by s, if any.
func ParseWelcomePage(s string) (WelcomePage, bool) { return parseClosed(welcomePages, s) }

// ParseBillingTask returns the billing task named by s, if any.
func ParseBillingTask(s string) (BillingTask, bool) { return parseClosed(billingTasks, s) }

// ParseInterfaceStyle returns the interface style named by s, if any.
func ParseInterfaceStyle(s string) (InterfaceStyle, bool) { return parseClosed(interfaceStyles, s) }

// Valid reports whether m is in the open-mode allow-list.
func (m OpenMode) Valid() bool {
	_, ok := ParseOpenMode(string(m))
	return ok
}
