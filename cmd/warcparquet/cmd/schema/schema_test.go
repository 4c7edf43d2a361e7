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

package schema

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runE(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header line plus the twenty columns.
	require.Len(t, lines, 21)
	assert.Contains(t, lines[0], "COLUMN")
	assert.Contains(t, lines[1], "id")
	assert.Contains(t, lines[20], "body")
}
