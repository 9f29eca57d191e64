// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/models"
)

const serverUnavailable = "Отсутствует сеть или Сервер недоступен"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailable
	}

	return err.Error()
}

func failureMessage(f models.SyncFailure) string {
	switch f.Kind {
	case models.FailureNetwork:
		if f.Err == nil {
			return serverUnavailable
		}
		return humanizeServerUnavailableError(f.Err)
	case models.FailureServerRejected:
		return fmt.Sprintf("Сервер отклонил запрос страницы %d (статус %d)", f.FailedPage, f.Status)
	case models.FailureMalformed:
		return fmt.Sprintf("Некорректный ответ сервера для страницы %d", f.FailedPage)
	default:
		if f.Err != nil {
			return f.Err.Error()
		}
		return "Неизвестная ошибка"
	}
}

func rejectionMessage(r models.NavigationRejected) string {
	switch r.Reason {
	case models.RejectedBusy:
		return "Загрузка уже идёт, подождите"
	case models.RejectedOutOfRange:
		if r.Navigation == models.GoPrevious {
			return fmt.Sprintf("Страница %d первая", r.Page)
		}
		return fmt.Sprintf("Страница %d последняя", r.Page)
	default:
		return "Запрос отклонён"
	}
}

// navigationError returns the status line for an error the renderer has not
// shown already. Busy, out of range and fetch failures reach the screen
// through the renderer, a closed session needs no message at all.
func navigationError(err error) (string, bool) {
	switch {
	case err == nil, errors.Is(err, service.ErrSessionClosed):
		return "", false
	case errors.Is(err, service.ErrUnknownAction):
		return "Действие не поддерживается", true
	case errors.Is(err, service.ErrUnknownNavigation):
		return fmt.Sprintf("Ошибка навигации: %v", err), true
	default:
		return "", false
	}
}
