package domain

// Channel определяет webhook, в который уходит уведомление
type Channel string

const (
	ChannelWhitelist     Channel = "whitelist"
	ChannelPasswordReset Channel = "password_reset"
	ChannelBugReport     Channel = "bug_report"
	ChannelPurchase      Channel = "purchase"
	ChannelTournament    Channel = "tournament"
)

// Message представляет тело запроса к webhook чат-платформы
type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`

	// Attachment отправляется отдельной частью multipart запроса
	Attachment *Attachment `json:"-"`
}

// Embed представляет карточку сообщения
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Image       *EmbedImage  `json:"image,omitempty"`
}

// EmbedField представляет поле карточки
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedFooter представляет подпись карточки
type EmbedFooter struct {
	Text string `json:"text"`
}

// EmbedImage представляет изображение карточки
type EmbedImage struct {
	URL string `json:"url"`
}

// Attachment представляет файл, прикрепленный к форме
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size возвращает размер вложения в байтах
func (a *Attachment) Size() int64 {
	return int64(len(a.Data))
}

// WhitelistApplication представляет заявку в whitelist сервера
type WhitelistApplication struct {
	Edition           string      `json:"edition"`
	MinecraftUsername string      `json:"minecraft_username"`
	DiscordUsername   string      `json:"discord_username"`
	Image             *Attachment `json:"-"`
}

// PasswordResetRequest представляет запрос на сброс пароля игрового аккаунта
type PasswordResetRequest struct {
	Edition           string `json:"edition"`
	MinecraftUsername string `json:"minecraft_username"`
	DiscordUsername   string `json:"discord_username"`
}

// BugReport представляет сообщение об ошибке
type BugReport struct {
	DiscordUsername string      `json:"discord_username"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Image           *Attachment `json:"-"`
}

// TeamRegistration представляет регистрацию команды на турнир
type TeamRegistration struct {
	Title      string `json:"title"`
	TeamName   string `json:"team_name"`
	IGL        string `json:"igl"`
	Rusher     string `json:"rusher"`
	Assaulter  string `json:"assaulter"`
	Sniper     string `json:"sniper"`
	Substitute string `json:"substitute,omitempty"`
}

// Идентификаторы действий, защищенных кулдауном
const (
	ActionWhitelist     = "whitelist"
	ActionPasswordReset = "forgot-password"
	ActionBugReport     = "bug-report"
)

// SubmissionResult представляет результат отправки формы
type SubmissionResult struct {
	ActionID          string `json:"action"`
	CooldownRemaining int64  `json:"cooldown_remaining_seconds"`
}
