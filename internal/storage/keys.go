package storage

// Key names are shared with earlier releases of the app; do not rename.
const (
	KeyAuthToken     = "remsodo_auth_token"
	KeyUsers         = "remsodo_users"
	KeyCurrentCourse = "remsodo_currentCourse"
	KeyCatalog       = "remsodo_catalog"

	prefixEnrolled    = "remsodo_enrolled_"
	prefixProgress    = "remsodo_progress_"
	prefixActiveTab   = "remsodo_activeTab_"
	prefixQuizAnswers = "remsodo_quizAnswers_"
	prefixDetails     = "remsodo_details_"
	prefixChat        = "remsodo_chat_"
)

func EnrolledKey(email string) string    { return prefixEnrolled + email }
func ProgressKey(email string) string    { return prefixProgress + email }
func ActiveTabKey(title string) string   { return prefixActiveTab + title }
func QuizAnswersKey(title string) string { return prefixQuizAnswers + title }
func DetailsKey(title string) string     { return prefixDetails + title }

// ChatKey is per user and scope; scope is "general" or "course:<title>".
func ChatKey(email, scope string) string { return prefixChat + email + "_" + scope }

// ChatPrefix matches every transcript of one user.
func ChatPrefix(email string) string { return prefixChat + email + "_" }
