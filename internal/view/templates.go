package view

const homeContent = `<h1>Discover Your Skin Type</h1>
<p>Upload a photo and get an instant analysis with personalized recommendations.</p>
<a href="/upload">Get Started</a>`

const loginContent = `<h1>Welcome Back</h1>
<form method="post" action="/login">
  <input type="hidden" name="from" value="{{.Data.From}}">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Login</button>
</form>
<p>No account? <a href="/signup">Sign up</a></p>`

const signupContent = `<h1>Create Account</h1>
<form method="post" action="/signup">
  <input type="text" name="username" placeholder="Username" required>
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Sign Up</button>
</form>`

const dashboardContent = `<h1>Welcome back, {{.Data.Username}}!</h1>
<p>View your skin analysis history and track your progress.</p>
<a href="/upload">+ New Analysis</a>
{{if not .Data.Analyses}}
<p>You haven't created any analyses yet.</p>
{{else}}
<ul>
{{range .Data.Analyses}}
  <li>
    <a href="/results/{{.Id}}">
      <img src="/uploads/{{.ImagePath}}" alt="Skin analysis" width="120">
      {{.SkinType}} &mdash; {{.Confidence}}% &mdash; {{.CreatedAt.Format "Jan 2, 2006"}}
    </a>
  </li>
{{end}}
</ul>
{{end}}`

const uploadContent = `<h1>Upload Your Photo</h1>
{{if .Data.Preview}}<p>Selected: {{.Data.Preview}}</p>{{end}}
<form method="post" action="/upload" enctype="multipart/form-data">
  <input type="file" name="image" accept="image/*">
  <p>PNG, JPG or JPEG (max 16MB)</p>
  <button type="submit"{{if .Data.Uploading}} disabled{{end}}>
    {{if .Data.Uploading}}Analyzing...{{else}}Analyze My Skin{{end}}
  </button>
</form>`

const resultsContent = `<a href="/dashboard">&larr; Back to Dashboard</a>
<h1>Analysis Results</h1>
<img src="{{.Data.ImageURL}}" alt="Analyzed skin" width="300">
<p>{{.Data.Analysis.CreatedAt.Format "January 2, 2006 15:04"}}</p>
<h2>Skin Type</h2>
<p>{{.Data.Analysis.SkinType}} ({{.Data.Analysis.Confidence}}% confidence)</p>
<h2>Recommendations</h2>
<ol>
{{range .Data.Recommendations}}<li>{{.}}</li>{{end}}
</ol>
<a href="/upload">Create New Analysis</a>`

const progressContent = `<a href="/dashboard">&larr; Back to Dashboard</a>
<h1>Progress Tracker</h1>
{{if eq .Data.Snapshot.TotalCount 0}}
<p>No analysis data yet. Start tracking your progress!</p>
<a href="/upload">Create First Analysis</a>
{{else}}
<ul>
  <li>Total Scans: {{.Data.Snapshot.TotalCount}}</li>
  <li>Avg Confidence: {{.Data.Snapshot.AverageConfidence}}%</li>
  <li>Primary Type: {{.Data.Snapshot.ModalSkinType}}</li>
</ul>
<h2>Confidence Trend</h2>
<ol>
{{range .Data.Snapshot.Series}}<li>{{.Date}}: {{.SkinType}}, {{.Confidence}}%</li>{{end}}
</ol>
<h2>Detailed History</h2>
<table>
<tr><th>Date</th><th>Skin Type</th><th>Confidence</th><th></th></tr>
{{range .Data.Analyses}}
<tr>
  <td>{{.CreatedAt.Format "January 2, 2006"}}</td>
  <td>{{.SkinType}}</td>
  <td>{{.Confidence}}%</td>
  <td><a href="/results/{{.Id}}">View Details &rarr;</a></td>
</tr>
{{end}}
</table>
{{end}}`

const chatbotContent = `<a href="/dashboard">&larr; Back to Dashboard</a>
<h1>AI Skincare Consultant</h1>
<p>{{.Data.Greeting}}</p>
<p>Quick questions:</p>
<ul>
{{range .Data.QuickQuestions}}<li>{{.}}</li>{{end}}
</ul>
<form method="post" action="/chatbot">
  <input type="text" name="message" placeholder="Type your question...">
  <button type="submit">Send</button>
</form>
{{if .Data.Reply}}<p><strong>Consultant:</strong> {{.Data.Reply}}</p>{{end}}
<p><strong>Note:</strong> This chatbot is currently in development.
For medical concerns, please consult a dermatologist.</p>`

const messageContent = `<h1>{{.Data}}</h1>
<a href="/dashboard">Back to Dashboard</a>`
