package pamflet

import "encoding/json"

// Every element encodes as a flat JSON object tagged with its kind in "type".

func (e *Text) MarshalJSON() ([]byte, error) {
	type plain Text
	return json.Marshal(struct {
		Type ElementKind `json:"type"`
		plain
	}{KindText, plain(*e)})
}

func (e *List) MarshalJSON() ([]byte, error) {
	type plain List
	return json.Marshal(struct {
		Type ElementKind `json:"type"`
		plain
	}{KindList, plain(*e)})
}

func (e *SingleSelect) MarshalJSON() ([]byte, error) {
	type plain SingleSelect
	return json.Marshal(struct {
		Type ElementKind `json:"type"`
		plain
	}{KindSingleSelect, plain(*e)})
}

func (e *MultiSelect) MarshalJSON() ([]byte, error) {
	type plain MultiSelect
	return json.Marshal(struct {
		Type ElementKind `json:"type"`
		plain
	}{KindMultiSelect, plain(*e)})
}

func (e *Link) MarshalJSON() ([]byte, error) {
	type plain Link
	return json.Marshal(struct {
		Type ElementKind `json:"type"`
		plain
	}{KindLink, plain(*e)})
}

func (e *Image) MarshalJSON() ([]byte, error) {
	type plain Image
	return json.Marshal(struct {
		Type ElementKind `json:"type"`
		plain
	}{KindImage, plain(*e)})
}

func (e *Audio) MarshalJSON() ([]byte, error) {
	type plain Audio
	return json.Marshal(struct {
		Type ElementKind `json:"type"`
		plain
	}{KindAudio, plain(*e)})
}
