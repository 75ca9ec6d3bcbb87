package constvars

const (
	RegexEmail              = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexPhoneNumberGeneral = `^\+[1-9][\d\s-]{7,18}\d$`
	RegexBloodType          = `^(A|B|AB|O)[+-]$`
	RegexWhitespaceRun      = `\s+`
)
