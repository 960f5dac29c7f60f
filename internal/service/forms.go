package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/avc/tscoins-wallet/internal/cooldown"
	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/utils/username"
	"go.uber.org/zap"
)

const (
	// MaxImageSize предельный размер прикрепляемого изображения
	MaxImageSize = 8 << 20

	formColor = 0x76c7ff
	bugColor  = 0xff6b6b

	minBugTitle       = 5
	minBugDescription = 20
	maxFieldTitle     = 256
	maxFieldValue     = 1024

	notProvided            = "Not provided"
	defaultTournamentTitle = "Tournament Registration"
)

var editionNames = map[string]string{
	"java":    "Java Edition",
	"bedrock": "Bedrock Edition",
	"pocket":  "Pocket Edition",
}

// FormService реализует domain.FormService.
// Формы с кулдауном проходят шаги: проверка полей, проверка кулдауна,
// уведомление, запуск кулдауна. Неудачная отправка не блокирует повтор.
type FormService struct {
	timer    *cooldown.Timer
	notifier domain.Notifier
	duration time.Duration
	footer   string
	logger   *zap.Logger
	now      func() time.Time

	// Отправки, которые прошли проверку кулдауна, но еще не запустили его
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewFormService создает новый FormService
func NewFormService(timer *cooldown.Timer, notifier domain.Notifier, duration time.Duration, footer string, logger *zap.Logger) *FormService {
	if duration <= 0 {
		duration = cooldown.DefaultDuration
	}
	if footer == "" {
		footer = domain.DefaultFooterText
	}

	return &FormService{
		timer:    timer,
		notifier: notifier,
		duration: duration,
		footer:   footer,
		logger:   logger,
		now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// SubmitWhitelist отправляет заявку в whitelist с обязательным скриншотом
func (s *FormService) SubmitWhitelist(ctx context.Context, subject string, app domain.WhitelistApplication) (*domain.SubmissionResult, error) {
	edition, name, err := validatePlayer(app.Edition, app.MinecraftUsername)
	if err != nil {
		return nil, err
	}
	if app.Image == nil {
		return nil, domain.NewValidationError("image", "Please upload an image")
	}
	image, err := validateImage(app.Image)
	if err != nil {
		return nil, err
	}

	now := s.now()
	embed := s.embed("🎮 New Whitelist Application", "A new whitelist application has been submitted.", formColor, now)
	embed.Fields = []domain.EmbedField{
		{Name: "📱 Minecraft Edition", Value: edition},
		{Name: "👤 Minecraft Username", Value: name},
		{Name: "💬 Discord Username", Value: orNotProvided(app.DiscordUsername)},
		{Name: "🕐 Submitted At", Value: now.UTC().Format(submittedAtFmt)},
	}
	embed.Image = &domain.EmbedImage{URL: "attachment://" + image.Filename}

	msg := &domain.Message{Embeds: []domain.Embed{embed}, Attachment: image}
	return s.submit(ctx, subject, domain.ActionWhitelist, domain.ChannelWhitelist, msg)
}

// SubmitPasswordReset отправляет запрос на сброс пароля игрового аккаунта
func (s *FormService) SubmitPasswordReset(ctx context.Context, subject string, req domain.PasswordResetRequest) (*domain.SubmissionResult, error) {
	edition, name, err := validatePlayer(req.Edition, req.MinecraftUsername)
	if err != nil {
		return nil, err
	}

	now := s.now()
	embed := s.embed("🔐 Password Reset Request", "A new password reset request has been submitted.", formColor, now)
	embed.Fields = []domain.EmbedField{
		{Name: "📱 Minecraft Edition", Value: edition},
		{Name: "👤 Minecraft Username", Value: name},
		{Name: "💬 Discord Username", Value: orNotProvided(req.DiscordUsername)},
		{Name: "🕐 Submitted At", Value: now.UTC().Format(submittedAtFmt)},
	}

	msg := &domain.Message{Embeds: []domain.Embed{embed}}
	return s.submit(ctx, subject, domain.ActionPasswordReset, domain.ChannelPasswordReset, msg)
}

// SubmitBugReport отправляет сообщение об ошибке, скриншот необязателен
func (s *FormService) SubmitBugReport(ctx context.Context, subject string, report domain.BugReport) (*domain.SubmissionResult, error) {
	title := strings.TrimSpace(report.Title)
	description := strings.TrimSpace(report.Description)

	if title == "" || description == "" {
		return nil, domain.NewValidationError("", "Please fill in all required fields (Title and Description)")
	}
	if utf8.RuneCountInString(title) < minBugTitle {
		return nil, domain.NewValidationError("title", "Title must be at least 5 characters long")
	}
	if utf8.RuneCountInString(description) < minBugDescription {
		return nil, domain.NewValidationError("description", "Please provide a more detailed description (at least 20 characters)")
	}

	var image *domain.Attachment
	if report.Image != nil {
		var err error
		if image, err = validateImage(report.Image); err != nil {
			return nil, err
		}
	}

	now := s.now()
	embed := s.embed("🐛 New Bug Report", "A new bug report has been submitted.", bugColor, now)
	embed.Fields = []domain.EmbedField{
		{Name: "📝 Title", Value: truncate(title, maxFieldTitle)},
		{Name: "📄 Description", Value: truncate(description, maxFieldValue)},
	}
	if discord := strings.TrimSpace(report.DiscordUsername); discord != "" {
		embed.Fields = append(embed.Fields, domain.EmbedField{Name: "💬 Discord Username", Value: discord})
	}
	embed.Fields = append(embed.Fields, domain.EmbedField{Name: "🕐 Submitted At", Value: now.UTC().Format(submittedAtFmt)})

	msg := &domain.Message{Embeds: []domain.Embed{embed}}
	if image != nil {
		embed := &msg.Embeds[0]
		embed.Image = &domain.EmbedImage{URL: "attachment://" + image.Filename}
		msg.Attachment = image
	}

	return s.submit(ctx, subject, domain.ActionBugReport, domain.ChannelBugReport, msg)
}

// SubmitTeamRegistration отправляет состав команды на турнир.
// Форма турнира кулдауном не ограничена.
func (s *FormService) SubmitTeamRegistration(ctx context.Context, subject string, team domain.TeamRegistration) (*domain.SubmissionResult, error) {
	required := []struct {
		field string
		value string
	}{
		{"team_name", team.TeamName},
		{"igl", team.IGL},
		{"rusher", team.Rusher},
		{"assaulter", team.Assaulter},
		{"sniper", team.Sniper},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.NewValidationError(r.field, "is required")
		}
	}

	title := strings.TrimSpace(team.Title)
	if title == "" {
		title = defaultTournamentTitle
	}
	substitute := "None"
	if sub := strings.TrimSpace(team.Substitute); sub != "" {
		substitute = mention(sub)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", title)
	fmt.Fprintf(&b, "**Team Name:** %s\n", strings.TrimSpace(team.TeamName))
	fmt.Fprintf(&b, "**IGL:** %s\n", mention(team.IGL))
	fmt.Fprintf(&b, "**Rusher:** %s\n", mention(team.Rusher))
	fmt.Fprintf(&b, "**Assaulter:** %s\n", mention(team.Assaulter))
	fmt.Fprintf(&b, "**Sniper:** %s\n", mention(team.Sniper))
	fmt.Fprintf(&b, "**Substitute:** %s", substitute)

	return s.submit(ctx, subject, "", domain.ChannelTournament, &domain.Message{Content: b.String()})
}

// CooldownStatus возвращает состояние кулдауна действия для субъекта
func (s *FormService) CooldownStatus(ctx context.Context, subject, actionID string) (*domain.CooldownStatus, error) {
	if !isGatedAction(actionID) {
		return nil, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", actionID))
	}

	status, err := s.timer.Resume(ctx, subject, actionID)
	if err != nil {
		return nil, storageError("form service: failed to read cooldown", err)
	}
	return status.ToDomain(), nil
}

func (s *FormService) submit(ctx context.Context, subject, actionID string, channel domain.Channel, msg *domain.Message) (*domain.SubmissionResult, error) {
	if actionID != "" {
		// Резерв действует в пределах процесса; несколько реплик могут отправить по одному сообщению
		if !s.reserve(subject, actionID) {
			return nil, &cooldown.ActiveError{ActionID: actionID, Remaining: s.duration}
		}
		defer s.release(subject, actionID)

		if err := s.timer.Gate(ctx, subject, actionID); err != nil {
			return nil, storageError("form service: failed to check cooldown", err)
		}
	}

	if err := s.notifier.Notify(ctx, channel, msg); err != nil {
		if !errors.Is(err, domain.ErrNotificationFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrNotificationFailed, err)
		}
		return nil, fmt.Errorf("form service: failed to deliver %s: %w", channel, err)
	}

	result := &domain.SubmissionResult{ActionID: actionID}
	if actionID == "" {
		return result, nil
	}

	status, err := s.timer.Start(ctx, subject, actionID, s.duration)
	if err != nil {
		// Сообщение уже доставлено, повторная отправка создала бы дубль
		s.logger.Error("failed to start cooldown after delivery",
			zap.String("subject", subject),
			zap.String("action", actionID),
			zap.Error(err),
		)
		return result, nil
	}

	s.logger.Info("form submitted", zap.String("channel", string(channel)), zap.String("subject", subject))

	result.CooldownRemaining = int64(status.Remaining / time.Second)
	return result, nil
}

// reserve отмечает отправку действия субъектом; false, если такая отправка уже идет
func (s *FormService) reserve(subject, actionID string) bool {
	key := subject + "|" + actionID

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *FormService) release(subject, actionID string) {
	s.mu.Lock()
	delete(s.inflight, subject+"|"+actionID)
	s.mu.Unlock()
}

func (s *FormService) embed(title, description string, color int, now time.Time) domain.Embed {
	return domain.Embed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &domain.EmbedFooter{Text: s.footer},
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
}

func validatePlayer(edition, name string) (string, string, error) {
	edition = strings.ToLower(strings.TrimSpace(edition))
	name = username.Normalize(name)

	if edition == "" || name == "" {
		return "", "", domain.NewValidationError("", "Please fill in all required fields (Minecraft Edition and Username)")
	}
	display, ok := editionNames[edition]
	if !ok {
		return "", "", domain.NewValidationError("edition", fmt.Sprintf("unknown edition %q", edition))
	}
	if !username.Validate(name) {
		return "", "", domain.NewValidationError("minecraft_username", username.Rule)
	}
	return display, name, nil
}

func validateImage(img *domain.Attachment) (*domain.Attachment, error) {
	if !strings.HasPrefix(img.ContentType, "image/") {
		return nil, domain.NewValidationError("image", "Please select a valid image file")
	}
	if img.Size() > MaxImageSize {
		return nil, domain.NewValidationError("image", "Image size must be less than 8MB")
	}

	filename := path.Base(strings.ReplaceAll(img.Filename, "\\", "/"))
	if filename == "." || filename == "/" || filename == "" {
		filename = "image"
	}

	return &domain.Attachment{Filename: filename, ContentType: img.ContentType, Data: img.Data}, nil
}

// truncate обрезает строку до limit символов, заменяя хвост многоточием
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-3]) + "..."
}

func orNotProvided(value string) string {
	if value = strings.TrimSpace(value); value == "" {
		return notProvided
	}
	return value
}

func mention(id string) string {
	return "<@" + strings.TrimSpace(id) + ">"
}

func isGatedAction(actionID string) bool {
	switch actionID {
	case domain.ActionWhitelist, domain.ActionPasswordReset, domain.ActionBugReport:
		return true
	}
	return false
}
