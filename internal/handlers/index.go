package handlers

import "github.com/gofiber/fiber/v2"

const uploadPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>SEO Traffic Forecaster</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 48px auto; padding: 0 16px; }
form { margin-top: 24px; padding: 24px; border: 1px dashed #999; border-radius: 8px; }
</style>
</head>
<body>
<h1>&#128640; SEO Traffic Forecaster</h1>
<p><strong>Predict your website's organic traffic for the next 6 months.</strong></p>
<p><em>Upload your monthly traffic data and get predictions in seconds!</em></p>
<form action="/v1/forecast/report" method="post" enctype="multipart/form-data">
<p>&#128194; Upload your CSV file with monthly traffic data (Month, Organic Traffic):</p>
<input type="file" name="file" accept=".csv" required>
<button type="submit">Forecast</button>
</form>
<p>Prefer JSON? POST the same file to <code>/v1/forecast</code>.</p>
</body>
</html>`

// Index handles GET / with the upload form
func Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(uploadPage)
}
