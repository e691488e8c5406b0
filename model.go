package solvium

import "net/url"

// TaskID is the opaque handle the service assigns to a created task.
// It is only valid against the client that created it.
type TaskID string

// TaskStatus is the task state as reported by the service.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusRunning   TaskStatus = "running"
	StatusCompleted TaskStatus = "completed"
	StatusRejected  TaskStatus = "rejected"

	// StatusUnknown stands in for a missing or unrecognized status field.
	StatusUnknown TaskStatus = "no_status"
)

// Terminal reports whether no further polling can change the status.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// TaskResult is one status snapshot of a task. Solution is set only when the
// status is completed, Error only when it is rejected.
type TaskResult struct {
	Status   TaskStatus
	Solution string
	Error    string
}

// Task describes one captcha to be solved. The set of implementations is
// closed: every captcha kind the service accepts has its own variant below,
// and each variant knows its endpoint, encoding and validation rules.
type Task interface {
	// Type returns the captcha type discriminator, e.g. "turnstile".
	Type() string

	validate() error
	endpoint() taskEndpoint
}

// taskEndpoint is the wire shape of one create-task call.
type taskEndpoint struct {
	method string
	path   string
	query  url.Values
	body   any
}

// TurnstileTask solves a Cloudflare Turnstile widget.
type TurnstileTask struct {
	SiteKey string
	PageURL string
}

func (t TurnstileTask) Type() string { return "turnstile" }

func (t TurnstileTask) validate() error {
	if t.SiteKey == "" {
		return &ValidationError{Field: "sitekey", Reason: "required"}
	}
	if t.PageURL == "" {
		return &ValidationError{Field: "url", Reason: "required"}
	}
	return nil
}

func (t TurnstileTask) endpoint() taskEndpoint {
	q := url.Values{}
	q.Set("url", t.PageURL)
	q.Set("sitekey", t.SiteKey)
	return taskEndpoint{method: "GET", path: "/task/turnstile", query: q}
}

// RecaptchaV3Task solves a reCAPTCHA v3 check. Action is the action name the
// protected site expects inside the token. Proxy is optional and, when set,
// is forwarded to the service so the token is minted through that exit.
type RecaptchaV3Task struct {
	SiteKey string
	PageURL string
	Action  string
	Proxy   string
}

func (t RecaptchaV3Task) Type() string { return "recaptcha-v3" }

func (t RecaptchaV3Task) validate() error {
	if t.SiteKey == "" {
		return &ValidationError{Field: "sitekey", Reason: "required"}
	}
	if t.PageURL == "" {
		return &ValidationError{Field: "url", Reason: "required"}
	}
	if t.Action == "" {
		return &ValidationError{Field: "action", Reason: "required"}
	}
	return nil
}

func (t RecaptchaV3Task) endpoint() taskEndpoint {
	q := url.Values{}
	q.Set("url", t.PageURL)
	q.Set("sitekey", t.SiteKey)
	q.Set("action", t.Action)
	if t.Proxy != "" {
		q.Set("proxy", t.Proxy)
	}
	return taskEndpoint{method: "GET", path: "/task/recaptcha-v3", query: q}
}

// RecaptchaV2Task solves a reCAPTCHA v2 challenge. Enterprise marks the
// enterprise flavor of the widget.
type RecaptchaV2Task struct {
	SiteKey    string
	PageURL    string
	Action     string
	Enterprise bool
	Proxy      string
}

func (t RecaptchaV2Task) Type() string { return "recaptcha-v2" }

func (t RecaptchaV2Task) validate() error {
	if t.SiteKey == "" {
		return &ValidationError{Field: "sitekey", Reason: "required"}
	}
	if t.PageURL == "" {
		return &ValidationError{Field: "url", Reason: "required"}
	}
	return nil
}

func (t RecaptchaV2Task) endpoint() taskEndpoint {
	q := url.Values{}
	q.Set("url", t.PageURL)
	q.Set("sitekey", t.SiteKey)
	if t.Action != "" {
		q.Set("action", t.Action)
	}
	if t.Enterprise {
		q.Set("enterprise", "true")
	}
	if t.Proxy != "" {
		q.Set("proxy", t.Proxy)
	}
	return taskEndpoint{method: "GET", path: "/task/recaptcha-v2", query: q}
}

// NoNameTask solves the sitekey-based challenge the service labels "noname".
type NoNameTask struct {
	SiteKey string
	PageURL string
}

func (t NoNameTask) Type() string { return "noname" }

func (t NoNameTask) validate() error {
	if t.SiteKey == "" {
		return &ValidationError{Field: "sitekey", Reason: "required"}
	}
	if t.PageURL == "" {
		return &ValidationError{Field: "url", Reason: "required"}
	}
	return nil
}

func (t NoNameTask) endpoint() taskEndpoint {
	q := url.Values{}
	q.Set("url", t.PageURL)
	q.Set("sitekey", t.SiteKey)
	return taskEndpoint{method: "GET", path: "/task/noname", query: q}
}

// VercelTask solves a Vercel challenge from its challenge token.
type VercelTask struct {
	ChallengeToken string
}

func (t VercelTask) Type() string { return "vercel" }

func (t VercelTask) validate() error {
	if t.ChallengeToken == "" {
		return &ValidationError{Field: "challengeToken", Reason: "required"}
	}
	return nil
}

func (t VercelTask) endpoint() taskEndpoint {
	q := url.Values{}
	q.Set("challengeToken", t.ChallengeToken)
	return taskEndpoint{method: "GET", path: "/task/vercel", query: q}
}

// CloudflareClearanceTask obtains a cf_clearance cookie value for a page
// behind a Cloudflare wall. Body is the base64 of the challenge page as
// fetched through Proxy; the solved cookie is bound to that same proxy exit,
// so Proxy is required.
type CloudflareClearanceTask struct {
	PageURL string
	Body    string
	Proxy   string
}

func (t CloudflareClearanceTask) Type() string { return "cf-clearance" }

func (t CloudflareClearanceTask) validate() error {
	if t.PageURL == "" {
		return &ValidationError{Field: "url", Reason: "required"}
	}
	if t.Body == "" {
		return &ValidationError{Field: "body", Reason: "required"}
	}
	if t.Proxy == "" {
		return &ValidationError{Field: "proxy", Reason: "required"}
	}
	return nil
}

func (t CloudflareClearanceTask) endpoint() taskEndpoint {
	return taskEndpoint{
		method: "POST",
		path:   "/task/cf-clearance",
		body: cfClearancePayload{
			URL:   t.PageURL,
			Body:  t.Body,
			Proxy: t.Proxy,
		},
	}
}

type cfClearancePayload struct {
	URL   string `json:"url"`
	Body  string `json:"body"`
	Proxy string `json:"proxy"`
}

// Wire shapes of the service responses.
type createResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"task_id"`
}

type statusResponse struct {
	Status string `json:"status"`
	Result struct {
		Solution string `json:"solution"`
		Error    string `json:"error"`
	} `json:"result"`
}
