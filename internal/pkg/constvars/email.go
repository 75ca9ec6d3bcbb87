package constvars

const (
	EmailOTPSubject = "Your OTP Code - HALO Healthcare"
)

const (
	EmailSendHTMLFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailBodyOTPFormat  = "<html><body><h2>HALO Healthcare - OTP Verification</h2><p>Your OTP code is: <strong>%s</strong></p><p>This code will expire in %d minutes.</p><p>If you didn't request this code, please ignore this email.</p><br><p>Best regards,<br>HALO Healthcare Team</p></body></html>"
)
