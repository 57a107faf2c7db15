// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package eligibility decides which email addresses may register, per role.

# Rules

All rule inputs are injected via the Rules struct so deployments (and tests)
can vary them without code changes:

	rules := eligibility.Rules{
		AdminEmails:   []string{"admin@example.org"},
		StudentDomain: "@cse.bubt.edu.bd",
		StudentPrefix: "20255203",
		SerialMin:     1,
		SerialMax:     41,
	}
	res := rules.Validate(email, eligibility.RoleStudent)

# Admin Eligibility

An admin signup is allowed iff the email is an exact, case-sensitive member
of AdminEmails.

# Student Eligibility

A student signup is allowed iff all of:

  - the email ends with StudentDomain
  - the local part is exactly len(StudentPrefix)+3 characters
  - the local part is StudentPrefix followed by three digits
  - when SerialMin > 0, the trailing serial falls in [SerialMin, SerialMax]

Setting SerialMin to zero disables the serial-range rule for deployments
whose ID scheme has no bounded serial.

# Purity

Validate is deterministic and side-effect-free. It never returns an error;
a disallowed email yields Allowed=false with a human-readable Reason.
*/
package eligibility
