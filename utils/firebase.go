package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FirebaseApp    *firebase.App
	FirebaseClient *messaging.Client
	once           sync.Once
	initErr        error
	isInitialized  bool
)

// InitFirebase initializes Firebase Admin SDK and the FCM client (singleton).
// Push delivery is optional: a missing credentials file disables it without
// failing startup.
func InitFirebase() error {
	if isInitialized {
		return initErr
	}

	once.Do(func() {
		ctx := context.Background()

		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			credentialsPath = os.Getenv("FCM_CREDENTIALS_PATH")
		}
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}

		projectID := os.Getenv("FIREBASE_PROJECT_ID")
		if projectID == "" {
			projectID = os.Getenv("FCM_PROJECT_ID")
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Printf("⚠️ Firebase credentials file not found at: %s", credentialsPath)
			isInitialized = true
			initErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			return
		}

		if projectID == "" {
			isInitialized = true
			initErr = fmt.Errorf("FIREBASE_PROJECT_ID is required for FCM")
			return
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(credentialsPath))
		if err != nil {
			isInitialized = true
			initErr = fmt.Errorf("firebase app initialization failed: %v", err)
			return
		}

		fcmClient, err := app.Messaging(ctx)
		if err != nil {
			FirebaseApp = app
			isInitialized = true
			initErr = fmt.Errorf("FCM client initialization failed: %v", err)
			return
		}

		log.Printf("✅ FCM client initialized for project %s", projectID)
		FirebaseApp = app
		FirebaseClient = fcmClient
		isInitialized = true
	})

	return initErr
}

// IsFCMEnabled reports whether push notifications can be delivered.
func IsFCMEnabled() bool {
	return FirebaseClient != nil
}

// GetInitError returns the Firebase initialization error, if any.
func GetInitError() error {
	return initErr
}

// SendPushToTokens delivers a notification to the given device tokens.
func SendPushToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	if FirebaseClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no FCM tokens provided")
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	resp, err := FirebaseClient.SendEachForMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("FCM multicast failed: %w", err)
	}
	if resp.FailureCount > 0 {
		log.Printf("⚠️ FCM delivered %d/%d messages", resp.SuccessCount, len(tokens))
	}
	return nil
}
