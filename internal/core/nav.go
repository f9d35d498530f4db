package core

// Destination names a logical place the platform can navigate to.
// Values mirror the routes of the learning portal the games are embedded in.
type Destination string

const (
	DestLanding     Destination = "/"
	DestSignup      Destination = "/signup"
	DestStudentHome Destination = "/studenthome"
	DestTeacherHome Destination = "/teacherhome"
	DestLearningHub Destination = "/studentslearning"
)

// NavRequest asks the platform to go to Dest, optionally carrying a payload.
// Games emit it on exit actions and never look at what happens next.
type NavRequest struct {
	Dest    Destination
	Payload map[string]any
}

// NewNavRequest creates a navigation request with an empty payload.
func NewNavRequest(dest Destination) *NavRequest {
	return &NavRequest{Dest: dest, Payload: make(map[string]any)}
}

// With adds a payload entry and returns the request for chaining.
func (r *NavRequest) With(key string, value any) *NavRequest {
	if r.Payload == nil {
		r.Payload = make(map[string]any)
	}
	r.Payload[key] = value
	return r
}
