package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed          = errors.New("validation failed")
	ErrPasswordTooShort          = errors.New("password is too short")
	ErrCompetitionNameRequired   = errors.New("competition name is required")
	ErrCompetitionInvalidDates   = errors.New("competition end date must be after start date")
	ErrEventNameRequired         = errors.New("event name is required")
	ErrEventInvalidType          = errors.New("invalid event type provided")
	ErrRegistrationAthleteNeeded = errors.New("registration requires an athlete")

	// Ошибки ядра планирования и посева
	ErrNoEventsFound           = errors.New("no events found for schedule generation")
	ErrNoSchedule              = errors.New("no schedule exists for this competition")
	ErrInvalidEvent            = errors.New("event not found or not eligible for heat assignment")
	ErrInvalidRound            = errors.New("invalid event round provided")
	ErrUnsupportedSeriesMethod = errors.New("unsupported series method")
	ErrUnsupportedLaneMethod   = errors.New("unsupported lane method")
	ErrNoParticipants          = errors.New("no participants registered for this round")

	// Ошибки конфликтов
	ErrRegistrationConflict    = errors.New("athlete is already registered for this event")
	ErrCompetitionNameConflict = errors.New("competition name already exists")
	ErrAthleteBibConflict      = errors.New("bib number is already in use")

	// Ошибки аутентификации и авторизации
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailTaken         = errors.New("email is already taken")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей
	ErrUserNotFound        = errors.New("user not found")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrAthleteNotFound     = errors.New("athlete not found")
)
