// Package auth implements account registration, e-mail verification and login.
//
// A user starts unverified with a single-use verification token. Confirm flips
// the account to verified and clears the token, so presenting the same token a
// second time fails.
//
// # Passwords
//
// Passwords are stored as bcrypt hashes. Rows created before hashing was
// introduced hold the password as given; CheckPassword recognises them by the
// missing bcrypt prefix and compares them in constant time. Set
// AUTH_PLAINTEXT_PASSWORDS=true to keep storing passwords as given.
//
// # Configuration
//
//	AUTH_BCRYPT_COST=12               # bcrypt cost factor
//	AUTH_REQUIRE_VERIFIED=false       # reject login until the e-mail is confirmed
//	AUTH_MAX_LOGIN_ATTEMPTS=5         # failed logins per IP+username before lockout
//	AUTH_RATE_LIMIT_WINDOW=15m
//	AUTH_LOCKOUT_DURATION=30m
//
// # Usage
//
//	svc := auth.NewService(usersRepo, mailer, cfg.Auth)
//	user, err := svc.Register(ctx, auth.RegisterInput{Username: "reader", ...})
//	user, err = svc.Authenticate(ctx, "Reader", "secret")
package auth
