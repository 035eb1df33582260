package db

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/models"
)

// Preview size used when nothing is stored
const (
	DefaultPreviewWidth  = 36
	DefaultPreviewHeight = 12
)

// EditorPrefs is how the editor was last left
type EditorPrefs struct {
	Kind          gradient.Kind
	Repeat        gradient.RepeatMode
	PreviewWidth  int
	PreviewHeight int
}

// DefaultEditorPrefs is a linear gradient without repeat at the default preview size
func DefaultEditorPrefs() EditorPrefs {
	return EditorPrefs{
		Kind:          gradient.Linear,
		Repeat:        gradient.RepeatNone,
		PreviewWidth:  DefaultPreviewWidth,
		PreviewHeight: DefaultPreviewHeight,
	}
}

// GetPreference returns the stored value for key; ok is false when unset
func GetPreference(key string) (string, bool, error) {
	var pref models.Preference
	err := DB.Where("name = ?", key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return pref.Value, true, nil
}

// SetPreference stores value under key, replacing any previous value
func SetPreference(key, value string) error {
	pref := models.Preference{Name: key, Value: value}
	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}

// ListPreferences returns every stored preference ordered by name
func ListPreferences() ([]models.Preference, error) {
	var prefs []models.Preference
	if err := DB.Order("name").Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

// ResetPreferences deletes every stored preference
func ResetPreferences() (int64, error) {
	res := DB.Where("1 = 1").Delete(&models.Preference{})
	return res.RowsAffected, res.Error
}

// LoadEditorPrefs reads the editor preferences, using defaults for anything
// missing or unreadable
func LoadEditorPrefs() (EditorPrefs, error) {
	prefs := DefaultEditorPrefs()

	if v, ok, err := GetPreference(models.PrefGradientType); err != nil {
		return prefs, err
	} else if ok {
		if k, err := gradient.ParseKind(v); err == nil {
			prefs.Kind = k
		}
	}

	if v, ok, err := GetPreference(models.PrefRepeatMode); err != nil {
		return prefs, err
	} else if ok {
		if m, err := gradient.ParseRepeatMode(v); err == nil {
			prefs.Repeat = m
		}
	}

	if v, ok, err := GetPreference(models.PrefPreviewWidth); err != nil {
		return prefs, err
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			prefs.PreviewWidth = n
		}
	}

	if v, ok, err := GetPreference(models.PrefPreviewHeight); err != nil {
		return prefs, err
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			prefs.PreviewHeight = n
		}
	}

	return prefs, nil
}

// SaveEditorPrefs stores the editor preferences
func SaveEditorPrefs(prefs EditorPrefs) error {
	values := []struct{ key, value string }{
		{models.PrefGradientType, prefs.Kind.String()},
		{models.PrefRepeatMode, prefs.Repeat.String()},
		{models.PrefPreviewWidth, strconv.Itoa(prefs.PreviewWidth)},
		{models.PrefPreviewHeight, strconv.Itoa(prefs.PreviewHeight)},
	}
	for _, kv := range values {
		if err := SetPreference(kv.key, kv.value); err != nil {
			return err
		}
	}
	return nil
}
