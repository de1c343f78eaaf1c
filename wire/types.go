package wire

// MessageType is a dense integer enumeration of every wire message kind,
// partitioned into request/response pairs.
type MessageType int

const (
	LoadModelRequest MessageType = iota
	ModelLoaded

	SetEndpointRequest
	EndpointSet

	SetObstaclesRequest
	ObstaclesChanged

	FindPathRequest
	PathFound
)

func (m MessageType) String() string {
	switch m {
	case LoadModelRequest:
		return "load_model_request"
	case ModelLoaded:
		return "model_loaded"
	case SetEndpointRequest:
		return "set_endpoint_request"
	case EndpointSet:
		return "endpoint_set"
	case SetObstaclesRequest:
		return "set_obstacles_request"
	case ObstaclesChanged:
		return "obstacles_changed"
	case FindPathRequest:
		return "find_path_request"
	case PathFound:
		return "path_found"
	default:
		return "unknown"
	}
}

// Header is the JSON object preceding every message's payload.
type Header struct {
	MessageType     MessageType `json:"message_type"`
	ContentEncoding string      `json:"content_encoding"`
	ByteOrder       string      `json:"byteorder"`
	ContentLength   int         `json:"content_length"`
}

// LoadModelPayload is the content of a LoadModelRequest.
type LoadModelPayload struct {
	Path string `json:"path"`
}

// ModelLoadedPayload is the content of a ModelLoaded response.
type ModelLoadedPayload struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Endpoint names which of a scenario's two endpoints a SetEndpointRequest
// addresses.
type Endpoint string

const (
	EndpointStart Endpoint = "start"
	EndpointEnd   Endpoint = "end"
)

// SetEndpointPayload is the content of a SetEndpointRequest.
type SetEndpointPayload struct {
	Which Endpoint `json:"which"`
	Row   int      `json:"row"`
	Col   int      `json:"col"`
}

// EndpointSetPayload is the content of an EndpointSet response.
type EndpointSetPayload struct {
	Which Endpoint `json:"which"`
	Row   int      `json:"row"`
	Col   int      `json:"col"`
}

// SetObstaclesPayload is the content of a SetObstaclesRequest: a sparse
// list of [row,col] cells to mark as obstacle.
type SetObstaclesPayload struct {
	Cells [][2]int `json:"cells"`
}

// ObstaclesChangedPayload is the content of an ObstaclesChanged response.
type ObstaclesChangedPayload struct {
	Count int `json:"count"`
}

// FindPathPayload is the content of a FindPathRequest.
type FindPathPayload struct {
	Alpha float64 `json:"alpha"`
}
