package client

import "time"

// Resource payloads mirror the remote dialdesk schema. They are
// pass-through records: the client deserializes each response once and
// never owns the data beyond that.

type Campaign struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         string     `json:"status" example:"active"`
	DialMode       string     `json:"dial_mode" example:"predictive"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	TotalContacts  int        `json:"total_contacts"`
	ContactedCount int        `json:"contacted_count"`
	SuccessCount   int        `json:"success_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CampaignList struct {
	Items   []Campaign `json:"items"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

// CampaignInput is the create/update request body.
type CampaignInput struct {
	Name      string     `json:"name"`
	Status    string     `json:"status,omitempty"`
	DialMode  string     `json:"dial_mode,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type CampaignStats struct {
	CampaignID      string  `json:"campaign_id"`
	CallsPlaced     int     `json:"calls_placed"`
	CallsAnswered   int     `json:"calls_answered"`
	AverageDuration float64 `json:"average_duration_seconds"`
	ContactRate     float64 `json:"contact_rate"`
	SuccessRate     float64 `json:"success_rate"`
}

type Contact struct {
	ID            string     `json:"id"`
	CampaignID    string     `json:"campaign_id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Status        string     `json:"status" example:"pending"`
	Attempts      int        `json:"attempts"`
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	Outcome       string     `json:"outcome,omitempty"`
}

type ContactList struct {
	Items   []Contact `json:"items"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
}

// ContactUploadResult summarises a contact file import.
type ContactUploadResult struct {
	Accepted int      `json:"accepted"`
	Rejected int      `json:"rejected"`
	Warnings []string `json:"warnings,omitempty"`
}

type Recording struct {
	ID              string    `json:"id"`
	CampaignID      string    `json:"campaign_id"`
	AgentID         string    `json:"agent_id"`
	AgentName       string    `json:"agent_name"`
	Phone           string    `json:"phone"`
	StartedAt       time.Time `json:"started_at"`
	DurationSeconds int       `json:"duration_seconds"`
	HasTranscript   bool      `json:"has_transcript"`
}

type RecordingList struct {
	Items   []Recording `json:"items"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

type TranscriptSegment struct {
	Speaker string  `json:"speaker" example:"agent"`
	StartAt float64 `json:"start_at"`
	Text    string  `json:"text"`
}

type Transcript struct {
	RecordingID string              `json:"recording_id"`
	Language    string              `json:"language"`
	Segments    []TranscriptSegment `json:"segments"`
}

type CollectionsSummary struct {
	From            time.Time `json:"from"`
	To              time.Time `json:"to"`
	TotalDebt       float64   `json:"total_debt"`
	Collected       float64   `json:"collected"`
	PromiseToPay    float64   `json:"promise_to_pay"`
	ContactRate     float64   `json:"contact_rate"`
	RecoveryRate    float64   `json:"recovery_rate"`
	AccountsSettled int       `json:"accounts_settled"`
}

type AgentPerformance struct {
	AgentID         string  `json:"agent_id"`
	AgentName       string  `json:"agent_name"`
	CallsHandled    int     `json:"calls_handled"`
	TalkTimeSeconds int     `json:"talk_time_seconds"`
	SuccessRate     float64 `json:"success_rate"`
	Collected       float64 `json:"collected"`
}

type AgentPerformanceReport struct {
	From   time.Time          `json:"from"`
	To     time.Time          `json:"to"`
	Agents []AgentPerformance `json:"agents"`
}

type Profile struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role" example:"supervisor"`
}

// LoginResponse is the token grant returned by the auth endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"3600"`
}
