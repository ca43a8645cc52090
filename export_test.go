// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package numlit

// This file exports internal symbols for testing purposes only.

const (
	DebugOff     = debugOff
	DebugMinimal = debugMinimal
	DebugFull    = debugFull
)

// MessageWithDebug renders e as if NUMLIT_DEBUG selected the given mode.
func (e *ValueError) MessageWithDebug(mode int) string {
	return e.message(mode)
}
