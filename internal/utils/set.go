package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/smart-trainer/internal/config"
	"github.com/misterclayt0n/smart-trainer/internal/models"
)

var ErrNoActiveSet = errors.New("no active set")

const setFile = "current_set.toml"

func getSetPath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return filepath.Join(dir, setFile), nil
}

func SaveSetState(state *models.SetState) error {
	path, err := getSetPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(state)
}

func LoadSetState() (*models.SetState, error) {
	path, err := getSetPath()
	if err != nil {
		return nil, err
	}

	var state models.SetState
	if _, err := toml.DecodeFile(path, &state); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoActiveSet
		}
		return nil, err
	}

	return &state, nil
}

func ClearSetState() error {
	path, err := getSetPath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoActiveSet
		}
		return err
	}
	return nil
}

func SetExists() bool {
	path, err := getSetPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
