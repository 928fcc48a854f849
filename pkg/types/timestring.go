package types

import (
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM"
// Вся арифметика слотов идет через целые минуты от полуночи
type TimeString string

// NewTimeString создает TimeString из времени суток t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString валидирует s и возвращает его как TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if _, err := ts.Minutes(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes строит TimeString из минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("time out of range: %d minutes", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Minutes возвращает значение в минутах от полуночи
func (t TimeString) Minutes() (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", string(t))
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", string(t))
	}
	return hour*60 + minute, nil
}

// AddMinutes возвращает время, сдвинутое вперед на d минут
func (t TimeString) AddMinutes(d int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + d)
}

// IsBefore проверяет, что t строго раньше other в пределах суток
// Некорректные значения сравниваются как не-раньше
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что t строго позже other в пределах суток
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

func (t TimeString) String() string {
	return string(t)
}
