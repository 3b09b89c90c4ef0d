// internal/app/bootstrap/config_test.go
package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()

	cases := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  AppConfig{MongoURI: "mongodb://localhost:27017", MongoDatabase: "sangam"},
		},
		{
			name: "srv scheme",
			cfg:  AppConfig{MongoURI: "mongodb+srv://cluster.example.net", MongoDatabase: "sangam"},
		},
		{
			name:    "bad scheme",
			cfg:     AppConfig{MongoURI: "http://localhost:27017", MongoDatabase: "sangam"},
			wantErr: true,
		},
		{
			name:    "empty uri",
			cfg:     AppConfig{MongoURI: "", MongoDatabase: "sangam"},
			wantErr: true,
		},
		{
			name:    "empty database",
			cfg:     AppConfig{MongoURI: "mongodb://localhost:27017", MongoDatabase: ""},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConfig(nil, tc.cfg, logger)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
