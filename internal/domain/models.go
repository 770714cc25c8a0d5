package domain

// Domain contains payload models sent to the AstraSync backend.

// DefaultUserID is the user the backend assumes when none is supplied.
const DefaultUserID = "demo_user"

// Profile is the user profile stored by the backend. Extra carries any
// additional attributes and is flattened into the JSON object.
type Profile struct {
	UserID string
	Extra  map[string]any
}

// Entry is a single day of health readings. Fields carries the readings
// themselves (heart rate, spo2, sleep hours and so on).
type Entry struct {
	UserID string
	Date   string
	Fields map[string]any
}

// Payload flattens the profile into the object the backend expects.
func (p Profile) Payload() map[string]any {
	out := make(map[string]any, len(p.Extra)+1)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["user_id"] = orDefaultUser(p.UserID)
	return out
}

// Payload flattens the entry into the object the backend expects.
// The date key is omitted when empty.
func (e Entry) Payload() map[string]any {
	out := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		out[k] = v
	}
	out["user_id"] = orDefaultUser(e.UserID)
	if e.Date != "" {
		out["date"] = e.Date
	}
	return out
}

// EntryFromMap splits a decoded JSON object into an Entry.
func EntryFromMap(m map[string]any) Entry {
	e := Entry{Fields: make(map[string]any, len(m))}
	for k, v := range m {
		switch k {
		case "user_id":
			e.UserID, _ = v.(string)
		case "date":
			e.Date, _ = v.(string)
		default:
			e.Fields[k] = v
		}
	}
	return e
}

// ProfileFromMap splits a decoded JSON object into a Profile.
func ProfileFromMap(m map[string]any) Profile {
	p := Profile{Extra: make(map[string]any, len(m))}
	for k, v := range m {
		if k == "user_id" {
			p.UserID, _ = v.(string)
			continue
		}
		p.Extra[k] = v
	}
	return p
}

func orDefaultUser(id string) string {
	if id == "" {
		return DefaultUserID
	}
	return id
}
