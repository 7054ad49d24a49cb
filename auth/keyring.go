// Package auth provides key-based authentication helpers and credential persistence.
package auth

import (
	"fmt"
	"strings"

	"github.com/boorusan-cli/boorusan/constant"
	"github.com/boorusan-cli/boorusan/log"
	"github.com/zalando/go-keyring"
)

const keyringService = constant.Boorusan

// SetCredentials persists a provider's login/API-key pair to the system keyring.
func SetCredentials(provider, login, apiKey string) error {
	if login == "" || apiKey == "" {
		return fmt.Errorf("login and api key cannot be empty")
	}

	err := keyring.Set(keyringService, provider, login+"\n"+apiKey)
	if err != nil {
		log.Error("failed to save credentials to keyring: " + err.Error())
		return err
	}
	return nil
}

// GetCredentials retrieves a provider's login/API-key pair from the system keyring.
func GetCredentials(provider string) (login, apiKey string, err error) {
	secret, err := keyring.Get(keyringService, provider)
	if err != nil {
		// Not having stored credentials is the common case.
		log.Infof("no credentials in keyring for %s: %v", provider, err)
		return "", "", err
	}

	parts := strings.SplitN(secret, "\n", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed keyring entry for %s", provider)
	}
	return parts[0], parts[1], nil
}

// DeleteCredentials removes a provider's stored credentials from the system keyring.
func DeleteCredentials(provider string) error {
	err := keyring.Delete(keyringService, provider)
	if err != nil {
		log.Error("failed to delete credentials from keyring: " + err.Error())
		return err
	}
	return nil
}
