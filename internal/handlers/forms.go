package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// maxFormBody предел тела multipart запроса: изображение плюс текстовые поля
	maxFormBody = service.MaxImageSize + 1<<20

	// multipartMemory часть формы, которая держится в памяти
	multipartMemory = 1 << 20
)

// FormsHandler принимает формы сообщества
type FormsHandler struct {
	formService domain.FormService
	logger      *zap.Logger
}

func NewFormsHandler(formService domain.FormService, logger *zap.Logger) *FormsHandler {
	return &FormsHandler{
		formService: formService,
		logger:      logger,
	}
}

func (h *FormsHandler) SubmitWhitelist(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	// Отсутствие изображения отклоняет сервис
	image, err := formImage(r)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		writeError(w, r, h.logger, err)
		return
	}

	app := domain.WhitelistApplication{
		Edition:           r.FormValue("edition"),
		MinecraftUsername: r.FormValue("minecraft_username"),
		DiscordUsername:   r.FormValue("discord_username"),
		Image:             image,
	}

	result, err := h.formService.SubmitWhitelist(r.Context(), subjectOf(r), app)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *FormsHandler) SubmitPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req domain.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, h.logger, http.StatusBadRequest, "Bad Request")
		return
	}

	result, err := h.formService.SubmitPasswordReset(r.Context(), subjectOf(r), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *FormsHandler) SubmitBugReport(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	image, err := formImage(r)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		writeError(w, r, h.logger, err)
		return
	}

	report := domain.BugReport{
		DiscordUsername: r.FormValue("discord_username"),
		Title:           r.FormValue("title"),
		Description:     r.FormValue("description"),
		Image:           image,
	}

	result, err := h.formService.SubmitBugReport(r.Context(), subjectOf(r), report)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *FormsHandler) SubmitTeamRegistration(w http.ResponseWriter, r *http.Request) {
	var team domain.TeamRegistration
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		writeMessage(w, h.logger, http.StatusBadRequest, "Bad Request")
		return
	}

	result, err := h.formService.SubmitTeamRegistration(r.Context(), subjectOf(r), team)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// GetCooldown возвращает остаток кулдауна, чтобы сайт восстановил таймер после перезагрузки
func (h *FormsHandler) GetCooldown(w http.ResponseWriter, r *http.Request) {
	status, err := h.formService.CooldownStatus(r.Context(), subjectOf(r), chi.URLParam(r, "action"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, status)
}

func (h *FormsHandler) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, h.logger, http.StatusRequestEntityTooLarge, "Image size must be less than 8MB")
			return false
		}
		writeMessage(w, h.logger, http.StatusBadRequest, "Bad Request")
		return false
	}
	return true
}

// formImage читает поле image, отсутствие файла возвращается как http.ErrMissingFile
func formImage(r *http.Request) (*domain.Attachment, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, err
		}
		return nil, domain.NewValidationError("image", "Please upload an image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image %q: %w", header.Filename, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &domain.Attachment{Filename: header.Filename, ContentType: contentType, Data: data}, nil
}

// subjectOf возвращает ключ кулдауна: пользователь, если он вошел, иначе адрес клиента
func subjectOf(r *http.Request) string {
	if userID, ok := GetUserID(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
