package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// toneBandEnum is shared by every schema that takes a tone band.
var toneBandEnum = []string{"Fair", "Light", "Medium", "Dark", "Deep"}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	pathProp := map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}

	return []Tool{
		// Image plumbing
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_save_upload",
			Description: "Persist a base64-encoded image upload under the configured upload directory with a generated unique filename. Returns the stored path for use with the skin_* tools.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data_base64": map[string]interface{}{
						"type":        "string",
						"description": "Raw image bytes, base64-encoded",
					},
					"extension": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "jpg", "jpeg"},
						"description": "File extension to store the upload under",
					},
				},
				"required": []string{"data_base64", "extension"},
			},
		},

		// Skin tone pipeline
		{
			Name:        "skin_segment",
			Description: "Segment skin-colored pixels in an image. Returns coverage statistics and the binary mask rendered as a base64 PNG (skin pixels white).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "skin_detect_tone",
			Description: "Detect the dominant skin tone of an image. Returns one of the five tone bands (Fair, Light, Medium, Dark, Deep) with the averaged skin color in RGB, HSV, and hex.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "skin_apply_tone",
			Description: "Recolor skin-region pixels toward a target tone band and return the result as a base64 PNG. Optionally persists the modified image next to the upload directory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
					"tone": map[string]interface{}{
						"type":        "string",
						"enum":        toneBandEnum,
						"description": "Target tone band",
					},
					"save": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to also persist the modified image (default false)",
						"default":     false,
					},
				},
				"required": []string{"path", "tone"},
			},
		},

		// Recommendations
		{
			Name:        "color_recommend",
			Description: "Get curated color palette recommendations and colors to avoid for a skin tone band. Unknown bands fall back to Medium.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tone": map[string]interface{}{
						"type":        "string",
						"description": "Tone band, typically the output of skin_detect_tone",
					},
				},
				"required": []string{"tone"},
			},
		},
		{
			Name:        "color_complementary",
			Description: "Generate colors with hues evenly spaced around the color wheel from a base color (e.g. the averaged skin color).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Base color as #RRGGBB",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to generate (default 4)",
						"default":     4,
					},
				},
				"required": []string{"hex"},
			},
		},
	}
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
