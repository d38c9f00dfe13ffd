// File: services/form/autofill.go
package form

import (
	"context"
	"fmt"
)

// AutoFill pulls contact and first-passenger fields from the profile provider
// into the draft. It runs at most once per session: the latch moves from
// uninitialized to initialized on the first call and later calls are no-ops,
// so re-renders never clobber user edits. Empty profile values never
// overwrite draft fields, and the first passenger's type tag is preserved.
func (s *DefaultFormService) AutoFill(ctx context.Context, sessionID string) (*FormSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.AutoFill == AutoFillInitialized {
		return sess, nil
	}
	if s.Profile == nil {
		return nil, fmt.Errorf("no profile provider configured")
	}

	fields, err := s.Profile(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for auto-fill: %w", err)
	}

	setIfPresent(&sess.Draft.ContactName, fields.FullName)
	setIfPresent(&sess.Draft.ContactEmail, fields.Email)
	setIfPresent(&sess.Draft.ContactPhone, fields.Phone)

	if len(sess.Draft.Passengers) > 0 {
		p := &sess.Draft.Passengers[0]
		setIfPresent(&p.FullName, fields.FullName)
		setIfPresent(&p.Nationality, fields.Nationality)
		setIfPresent(&p.PassportNumber, fields.PassportNumber)
		setIfPresent(&p.PassportExpiry, fields.PassportExpiry)
		setIfPresent(&p.DateOfBirth, fields.DateOfBirth)
	}

	sess.AutoFill = AutoFillInitialized
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func setIfPresent(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}
