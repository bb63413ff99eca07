// Package corpus holds the fixture candidate/reference pairs used by the
// examples, benchmarks and the report tool. The pairs are grouped into
// difficulty levels ranging from plain sentences to mixed structured
// content; the scorer itself has no awareness of these categories.
package corpus

// Example is a single candidate/reference pair.
type Example struct {
	Candidate string
	Reference string
}

// Level groups examples under a descriptive category name.
type Level struct {
	Name     string
	Examples []Example
}

var levels = []Level{
	{
		Name: "Basic Text",
		Examples: []Example{
			{
				Candidate: "The quick brown fox jumps over the lazy dog",
				Reference: "A quick brown fox jumps over a lazy dog",
			},
			{
				Candidate: "Machine learning is a subset of artificial intelligence",
				Reference: "Machine learning forms part of artificial intelligence systems",
			},
		},
	},
	{
		Name: "Structured Text",
		Examples: []Example{
			{
				Candidate: "Key features include: security authentication and data encryption",
				Reference: "Main features are: authentication security and encryption of data",
			},
			{
				Candidate: "User name: John Doe, Email: john@example.com, Status: Active",
				Reference: "Name: John Doe, Email address: john@example.com, Status: Active user",
			},
		},
	},
	{
		Name: "JSON Data",
		Examples: []Example{
			{
				Candidate: `{"user": {"name": "Alice", "age": 30, "city": "New York"}}`,
				Reference: `{"user": {"name": "Alice", "age": 30, "location": "New York"}}`,
			},
			{
				Candidate: `{"employees": [{"id": 1, "name": "Bob"}, {"id": 2, "name": "Charlie"}]}`,
				Reference: `{"staff": [{"id": 1, "name": "Bob"}, {"id": 2, "name": "Charlie"}]}`,
			},
			{
				Candidate: `{"status": "success", "data": {"count": 42, "items": ["a", "b"]}}`,
				Reference: `{"result": "success", "payload": {"total": 42, "list": ["a", "b"]}}`,
			},
		},
	},
	{
		Name: "HTML Content",
		Examples: []Example{
			{
				Candidate: "<div><h1>Title</h1><p>Content here</p></div>",
				Reference: "<section><h1>Title</h1><p>Content here</p></section>",
			},
			{
				Candidate: `<a href="/page">Link</a> <img src="photo.jpg" alt="Image">`,
				Reference: `<a href="/page">Link</a> <img src="photo.jpg" alt="Photo">`,
			},
			{
				Candidate: "<ul><li>Item 1</li><li>Item 2</li><li>Item 3</li></ul>",
				Reference: "<ol><li>Item 1</li><li>Item 2</li><li>Item 3</li></ol>",
			},
		},
	},
	{
		Name: "Mixed Content",
		Examples: []Example{
			{
				Candidate: `The API returned {"status": 200, "message": "OK"} with user data`,
				Reference: `API response was {"status": 200, "message": "OK"} containing user information`,
			},
			{
				Candidate: `Error: {"code": 404, "error": "Not Found"} occurred at 2024-01-15`,
				Reference: `Error occurred: {"code": 404, "error": "Not Found"} on date 2024-01-15`,
			},
		},
	},
	{
		Name: "Real-world Scenarios",
		Examples: []Example{
			{
				Candidate: "Natural language processing enables computers to understand human language through advanced algorithms",
				Reference: "NLP allows machines to comprehend natural human communication using sophisticated algorithmic approaches",
			},
			{
				Candidate: "The cat sat on the mat while the dog played in the yard",
				Reference: "The dog played in the yard while the cat sat on the mat",
			},
			{
				Candidate: "POST /api/users HTTP/1.1\nHost: api.example.com\nContent-Type: application/json\n{\"name\": \"Test\"}",
				Reference: "POST /api/users HTTP/1.1\nHost: api.example.com\nContent-Type: application/json\n{\"username\": \"Test\"}",
			},
			{
				Candidate: "<html><body><script>console.log('Hello');</script><div>Content</div></body></html>",
				Reference: "<html><body><div>Content</div><script>console.log('Hello');</script></body></html>",
			},
		},
	},
}

// Levels returns the fixture examples grouped by level.
func Levels() []Level {
	return levels
}

// Examples returns all fixture pairs in order, flattened across levels.
func Examples() []Example {
	var all []Example
	for _, level := range levels {
		all = append(all, level.Examples...)
	}
	return all
}
