// Copyright 2026 The Rendercord Authors
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

package discord

// Component and button type constants from the Discord message
// component API.
const (
	ComponentActionRow = 1
	ComponentButton    = 2
	ButtonStyleLink    = 5
)

// Message is the JSON body posted to the channel messages endpoint.
type Message struct {
	Embeds     []Embed     `json:"embeds"`
	Components []Component `json:"components,omitempty"`
}

// Embed is a rich-message block.
type Embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	URL         string  `json:"url,omitempty"`
	Color       int     `json:"color"`
	Fields      []Field `json:"fields,omitempty"`
}

// Field is a name/value pair shown inside an embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Component is a message component. Only action rows holding link
// buttons are used here.
type Component struct {
	Type       int      `json:"type"`
	Components []Button `json:"components,omitempty"`
}

// Button is a link-style button component.
type Button struct {
	Type  int    `json:"type"`
	Style int    `json:"style"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LinkButtonRow builds an action row holding a single link button.
func LinkButtonRow(label, url string) Component {
	return Component{
		Type: ComponentActionRow,
		Components: []Button{{
			Type:  ComponentButton,
			Style: ButtonStyleLink,
			Label: label,
			URL:   url,
		}},
	}
}
