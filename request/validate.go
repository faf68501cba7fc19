package request

import "github.com/adamwoolhether/webapi/internal/validate"

// target holds the builder values that can be checked before any I/O.
type target struct {
	Host   string `json:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port   int    `json:"port" validate:"min=0,max=65535"`
	Scheme string `json:"scheme" validate:"omitempty,oneof=http https"`
}

// check validates the values set on b.
func check(b *Builder) error {
	return validate.Check(target{Host: b.host, Port: b.port, Scheme: b.scheme})
}
