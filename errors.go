/*
 * Copyright 2023 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package warcparquet

import "fmt"

// FieldError is used for record fields which could not be converted to
// their column value. It carries enough context for a caller to log the
// failure or decide whether to skip the record.
type FieldError struct {
	// RecordID is the record's WARC-Record-ID. Empty if the record has no id.
	RecordID string
	// Field is the name of the WARC header field that failed conversion.
	Field string
	// Value is the offending header value. Empty when the field is missing.
	Value string
	// missing distinguishes an absent mandatory field from a malformed value.
	missing bool
}

func newMissingFieldError(recordID, field string) *FieldError {
	return &FieldError{RecordID: recordID, Field: field, missing: true}
}

func newMalformedFieldError(recordID, field, value string) *FieldError {
	return &FieldError{RecordID: recordID, Field: field, Value: value}
}

func (e *FieldError) Error() string {
	var msg string
	if e.missing {
		msg = fmt.Sprintf("warcparquet: missing mandatory field %s", e.Field)
	} else {
		msg = fmt.Sprintf("warcparquet: malformed value '%s' for field %s", e.Value, e.Field)
	}
	if e.RecordID != "" {
		msg = fmt.Sprintf("%s in record %s", msg, e.RecordID)
	}
	return msg
}
