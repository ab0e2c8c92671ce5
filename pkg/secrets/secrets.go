// Package secrets resolves the relational store credentials. The DSN
// can be supplied directly through the environment, or assembled from a
// JSON payload kept in Secret Manager with the usual
// host/port/username/password shape.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

type dbSecret struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
}

// ResolveDSN returns the Postgres DSN. POSTGRES_CONN_STR wins when set;
// otherwise POSTGRES_SECRET_NAME must name a Secret Manager version
// (projects/<p>/secrets/<s>/versions/<v>) holding the JSON payload.
func ResolveDSN(ctx context.Context) (string, error) {
	if dsn := os.Getenv("POSTGRES_CONN_STR"); dsn != "" {
		return dsn, nil
	}

	name := os.Getenv("POSTGRES_SECRET_NAME")
	if name == "" {
		return "", fmt.Errorf("neither POSTGRES_CONN_STR nor POSTGRES_SECRET_NAME is set")
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create secret manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to access secret %s: %w", name, err)
	}

	var s dbSecret
	if err := json.Unmarshal(resp.GetPayload().GetData(), &s); err != nil {
		return "", fmt.Errorf("failed to parse database secret: %w", err)
	}
	if s.DBName == "" {
		s.DBName = "twitterclone"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=require",
		s.Host, s.Port, s.Username, s.Password, s.DBName), nil
}
