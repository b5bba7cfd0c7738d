package services

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/x509"
	"database/sql"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"
)

// FCMService pushes "optimization ready" notifications to a user's
// registered device over Firebase Cloud Messaging's HTTP v1 API.
type FCMService struct {
	projectID   string
	db          *sql.DB
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
}

// serviceAccountCredentials is the structure of a Firebase service account
// JSON key file.
type serviceAccountCredentials struct {
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// NewFCMService loads a Firebase service account JSON key and returns a
// service ready to push notifications.
func NewFCMService(credentialsPath string, db *sql.DB) (*FCMService, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("credentials path is required")
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("error reading credentials file: %v", err)
	}

	var creds serviceAccountCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("error parsing credentials: %v", err)
	}

	if _, err := parsePrivateKey(creds.PrivateKey); err != nil {
		return nil, fmt.Errorf("error parsing private key: %v", err)
	}

	privateKeyBytes := []byte(strings.ReplaceAll(creds.PrivateKey, "\\n", "\n"))
	cfg := &jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: privateKeyBytes,
		Scopes:     []string{"https://www.googleapis.com/auth/firebase.messaging"},
		TokenURL:   creds.TokenURI,
	}

	return &FCMService{
		projectID:   creds.ProjectID,
		db:          db,
		httpClient:  &http.Client{},
		tokenSource: cfg.TokenSource(context.Background()),
	}, nil
}

func parsePrivateKey(keyData string) (*rsa.PrivateKey, error) {
	keyData = strings.TrimSpace(strings.ReplaceAll(keyData, "\\n", "\n"))

	block, _ := pem.Decode([]byte(keyData))
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block")
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		rsaKey, err2 := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err2 != nil {
			return nil, fmt.Errorf("failed to parse private key: %v", err)
		}
		return rsaKey, nil
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA private key")
	}
	return rsaKey, nil
}

// SendNotification pushes a single notification to one FCM device token.
func (f *FCMService) SendNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return fmt.Errorf("FCM token cannot be empty")
	}

	oauthToken, err := f.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("error getting OAuth token: %v", err)
	}

	message := map[string]interface{}{
		"message": map[string]interface{}{
			"token": token,
			"notification": map[string]string{
				"title": title,
				"body":  body,
			},
			"data": convertDataMap(data),
		},
	}

	endpoint := fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", f.projectID)
	return f.sendHTTPv1Request(ctx, endpoint, oauthToken.AccessToken, message)
}

// SendNotificationToUser looks up a user's registered FCM token and pushes
// to it. Returns nil (not an error) when the user has no token registered.
func (f *FCMService) SendNotificationToUser(ctx context.Context, userID int, title, body string, data map[string]string) error {
	var fcmToken string
	err := f.db.QueryRow(`SELECT fcm_token FROM users WHERE id = $1 AND fcm_token IS NOT NULL AND fcm_token != ''`, userID).Scan(&fcmToken)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("error fetching FCM token for user %d: %v", userID, err)
	}
	if fcmToken == "" {
		return nil
	}

	return f.SendNotification(ctx, fcmToken, title, body, data)
}

// NotifyOptimizationReady pushes the standard "optimization ready"
// notification for a finished, persisted run.
func (f *FCMService) NotifyOptimizationReady(ctx context.Context, userID int, projectName string, panelCount int) {
	body := fmt.Sprintf("%s: %d panel(s) required", projectName, panelCount)
	if err := f.SendNotificationToUser(ctx, userID, "Optimization ready", body, map[string]string{
		"type": "optimization_ready",
	}); err != nil {
		log.Printf("fcm: failed to notify user %d: %v", userID, err)
	}
}

// SaveFCMToken saves or updates the FCM token registered for a user.
func (f *FCMService) SaveFCMToken(userID int, token string) error {
	_, err := f.db.Exec(`UPDATE users SET fcm_token = $1 WHERE id = $2`, token, userID)
	if err != nil {
		return fmt.Errorf("error saving FCM token: %v", err)
	}
	return nil
}

// RemoveFCMToken clears the FCM token registered for a user.
func (f *FCMService) RemoveFCMToken(userID int) error {
	_, err := f.db.Exec(`UPDATE users SET fcm_token = NULL WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error removing FCM token: %v", err)
	}
	return nil
}

func (f *FCMService) sendHTTPv1Request(ctx context.Context, endpoint, accessToken string, payload map[string]interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorResp map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&errorResp); err == nil {
			return fmt.Errorf("FCM API error (status %d): %v", resp.StatusCode, errorResp)
		}
		return fmt.Errorf("FCM API error: status code %d", resp.StatusCode)
	}

	return nil
}

func convertDataMap(data map[string]string) map[string]string {
	if data == nil {
		return make(map[string]string)
	}
	result := make(map[string]string)
	for k, v := range data {
		result[k] = v
	}
	return result
}
