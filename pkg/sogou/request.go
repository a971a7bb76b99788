package sogou

// Charset is sent with every request.
const Charset = "utf-8"

// Form field names of the translate endpoint.
const (
	fieldText    = "q"
	fieldFrom    = "from"
	fieldTo      = "to"
	fieldPID     = "pid"
	fieldSalt    = "salt"
	fieldSign    = "sign"
	fieldCharset = "charset"
)

// Request is a signed translate request. It is built per call and never reused.
type Request struct {
	Text    string
	From    Language
	To      Language
	PID     string
	Salt    string
	Sign    string
	Charset string
}

// BuildRequest validates the input and signs it with a fresh salt, so two
// calls with the same arguments produce different requests.
func (s *Signer) BuildRequest(text string, from, to Language) (*Request, error) {
	if text == "" {
		return nil, &ValidationError{Field: "text", Reason: "source text does not exist"}
	}
	if !from.Valid() {
		return nil, &ValidationError{Field: "from", Reason: "unsupported language " + from.String()}
	}
	if !to.Valid() {
		return nil, &ValidationError{Field: "to", Reason: "unsupported language " + to.String()}
	}

	salt := s.Salt()
	return &Request{
		Text:    text,
		From:    from,
		To:      to,
		PID:     s.pid,
		Salt:    salt,
		Sign:    s.Sign(text, salt),
		Charset: Charset,
	}, nil
}

// Form returns the form-encoded body fields.
func (r *Request) Form() map[string]string {
	return map[string]string{
		fieldText:    r.Text,
		fieldFrom:    r.From.String(),
		fieldTo:      r.To.String(),
		fieldPID:     r.PID,
		fieldSalt:    r.Salt,
		fieldSign:    r.Sign,
		fieldCharset: r.Charset,
	}
}
