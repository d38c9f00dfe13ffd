package form

import (
	"context"
	"testing"

	"admas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoFillPopulatesContactAndFirstPassenger(t *testing.T) {
	svc := newTestService()
	svc.Profile = func(ctx context.Context, userID string) (ProfileFields, error) {
		return ProfileFields{
			FullName:       "Abebe Bikila",
			Email:          "abebe@example.com",
			Phone:          "+251911000000",
			Nationality:    "Ethiopian",
			PassportNumber: "EP123456",
			PassportExpiry: "2030-01-01",
			DateOfBirth:    "1990-05-05",
		}, nil
	}

	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	sess, err = svc.AutoFill(context.Background(), sess.SessionID)
	require.NoError(t, err)

	assert.Equal(t, AutoFillInitialized, sess.AutoFill)
	assert.Equal(t, "Abebe Bikila", sess.Draft.ContactName)
	assert.Equal(t, "abebe@example.com", sess.Draft.ContactEmail)
	assert.Equal(t, "+251911000000", sess.Draft.ContactPhone)

	require.Len(t, sess.Draft.Passengers, 1)
	p := sess.Draft.Passengers[0]
	assert.Equal(t, models.PassengerAdult, p.Type, "passenger type tag must be preserved")
	assert.Equal(t, "Abebe Bikila", p.FullName)
	assert.Equal(t, "Ethiopian", p.Nationality)
	assert.Equal(t, "EP123456", p.PassportNumber)
	assert.Equal(t, "2030-01-01", p.PassportExpiry)
	assert.Equal(t, "1990-05-05", p.DateOfBirth)
}

func TestAutoFillEmptyValuesNeverOverwrite(t *testing.T) {
	svc := newTestService()
	svc.Profile = func(ctx context.Context, userID string) (ProfileFields, error) {
		return ProfileFields{Email: "abebe@example.com"}, nil
	}

	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), sess.SessionID, models.DraftPatch{
		ContactName:  strPtr("Typed By Hand"),
		ContactPhone: strPtr("+251922000000"),
	})
	require.NoError(t, err)

	sess, err = svc.AutoFill(context.Background(), sess.SessionID)
	require.NoError(t, err)

	assert.Equal(t, "Typed By Hand", sess.Draft.ContactName)
	assert.Equal(t, "+251922000000", sess.Draft.ContactPhone)
	assert.Equal(t, "abebe@example.com", sess.Draft.ContactEmail)
}

func TestAutoFillRunsAtMostOnce(t *testing.T) {
	svc := newTestService()
	calls := 0
	svc.Profile = func(ctx context.Context, userID string) (ProfileFields, error) {
		calls++
		return ProfileFields{FullName: "Abebe Bikila"}, nil
	}

	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.AutoFill(context.Background(), sess.SessionID)
	require.NoError(t, err)

	// User overwrites the auto-filled value; a second auto-fill must not
	// clobber it.
	_, err = svc.Update(context.Background(), sess.SessionID, models.DraftPatch{ContactName: strPtr("Edited After Fill")})
	require.NoError(t, err)

	sess, err = svc.AutoFill(context.Background(), sess.SessionID)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Edited After Fill", sess.Draft.ContactName)
	assert.Equal(t, AutoFillInitialized, sess.AutoFill)
}
