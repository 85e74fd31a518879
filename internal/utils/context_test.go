// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "authenticated request",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantID: 42,
			wantOK: true,
		},
		{
			name:   "no user id attached",
			ctx:    context.Background(),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "wrong value type",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "42"),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "different key same name",
			ctx:    context.WithValue(context.Background(), "userID", int64(42)), //nolint:staticcheck
			wantID: 0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)

			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if userID != tt.wantID {
				t.Errorf("expected userID=%d, got %d", tt.wantID, userID)
			}
		})
	}
}
