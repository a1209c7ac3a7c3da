package server

// indexHTML is the static landing page. The real rendering of puzzles
// (animation, blanks for the redacted arithmetic) belongs to whatever
// front end consumes /api/puzzle; this page only documents the API.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>hashviz — hash collision puzzles</title>
  <style>
    body { font-family: sans-serif; max-width: 42rem; margin: 3rem auto; line-height: 1.5; }
    code { background: #f2f2f2; padding: 0.1rem 0.3rem; border-radius: 3px; }
  </style>
</head>
<body>
  <h1>hashviz</h1>
  <p>Generates step-by-step hash table collision puzzles with
  partially redacted arithmetic, for students learning collision
  resolution.</p>
  <h2>API</h2>
  <p><code>GET /api/puzzle?technique=&lt;t&gt;&amp;difficulty=&lt;d&gt;&amp;seed=&lt;n&gt;</code></p>
  <ul>
    <li><code>technique</code>: <code>linear_probing</code> (default),
        <code>quadratic_probing</code>, <code>double_hashing</code>,
        <code>chaining</code></li>
    <li><code>difficulty</code>: <code>easy</code> (default),
        <code>medium</code>, <code>hard</code></li>
    <li><code>seed</code>: optional non-zero integer for a reproducible puzzle</li>
  </ul>
  <p>Example: <a href="/api/puzzle?technique=chaining&amp;difficulty=easy">
  <code>/api/puzzle?technique=chaining&amp;difficulty=easy</code></a></p>
</body>
</html>
`
