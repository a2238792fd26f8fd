// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classify

import "strings"

const packagedPrefix = "Packaged "

// IsAmmo reports whether part is ammunition by name: anything containing
// "Ammo", "Nobelisk", or "Rebar" except the Rebar Gun itself.
func IsAmmo(part string) bool {
	return strings.Contains(part, "Ammo") ||
		strings.Contains(part, "Nobelisk") ||
		IsRebar(part)
}

// IsRebar reports whether part is rebar ammunition.
func IsRebar(part string) bool {
	return strings.Contains(part, "Rebar") && !strings.Contains(part, "Rebar Gun")
}

// IsIngot reports whether part is an ingot.
func IsIngot(part string) bool {
	return strings.Contains(part, "Ingot")
}

// IsPackaged reports whether part is a packaged fluid.
func IsPackaged(part string) bool {
	return strings.HasPrefix(part, packagedPrefix)
}
