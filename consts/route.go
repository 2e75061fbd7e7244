package consts

// Route syntax characters.
const (
	RuneFwdSlash = '/'
	RuneColon    = ':'
	RuneQuestion = '?'
	RuneHash     = '#'
	RuneAmp      = '&'
	RuneEquals   = '='
)

const (
	StrSlash           = "/"
	StrQueryOrFragment = "?#"
)
