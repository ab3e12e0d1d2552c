package render

// reportTemplate is the entire report page. The stylesheet takes its
// palette from the Theme; everything else is fixed.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>SARIF Report - {{.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: {{.Theme.Background}};
            color: {{.Theme.Text}};
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        header {
            background: linear-gradient(135deg, {{.Theme.Accent}} 0%, {{.Theme.AccentAlt}} 100%);
            color: white;
            padding: 2rem;
            border-radius: 0.5rem;
            margin-bottom: 2rem;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        h1 {
            font-size: 2rem;
            margin-bottom: 0.5rem;
        }

        .report-meta {
            font-size: 0.9rem;
            opacity: 0.9;
            margin-top: 1rem;
            padding-top: 1rem;
            border-top: 1px solid rgba(255, 255, 255, 0.2);
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 1rem;
            margin-bottom: 2rem;
        }

        .stat-card {
            background: {{.Theme.Surface}};
            padding: 1.5rem;
            border-radius: 0.5rem;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
            border-left: 4px solid {{.Theme.Accent}};
        }

        .stat-card.error {
            border-left-color: {{.Theme.Error}};
        }

        .stat-card.warning {
            border-left-color: {{.Theme.Warning}};
        }

        .stat-card.note {
            border-left-color: {{.Theme.Note}};
        }

        .stat-label {
            font-size: 0.9rem;
            color: {{.Theme.Muted}};
            text-transform: uppercase;
            letter-spacing: 0.05em;
            font-weight: 600;
        }

        .stat-value {
            font-size: 2.5rem;
            font-weight: 700;
            margin-top: 0.5rem;
            color: {{.Theme.Heading}};
        }

        .stat-card.error .stat-value {
            color: {{.Theme.Error}};
        }

        .stat-card.warning .stat-value {
            color: {{.Theme.Warning}};
        }

        .stat-card.note .stat-value {
            color: {{.Theme.Note}};
        }

        .section {
            margin-bottom: 2rem;
        }

        .section-title {
            font-size: 1.5rem;
            font-weight: 700;
            margin-bottom: 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid {{.Theme.Accent}};
            display: flex;
            align-items: center;
            gap: 0.5rem;
        }

        .section-title.error {
            border-bottom-color: {{.Theme.Error}};
        }

        .section-title.warning {
            border-bottom-color: {{.Theme.Warning}};
        }

        .section-title.note {
            border-bottom-color: {{.Theme.Note}};
        }

        .severity-badge {
            display: inline-block;
            padding: 0.25rem 0.75rem;
            border-radius: 1rem;
            font-size: 0.75rem;
            font-weight: 600;
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }

        .severity-badge.error {
            background: {{.Theme.ErrorBadgeBg}};
            color: {{.Theme.ErrorBadgeFg}};
        }

        .severity-badge.warning {
            background: {{.Theme.WarningBadgeBg}};
            color: {{.Theme.WarningBadgeFg}};
        }

        .severity-badge.note {
            background: {{.Theme.NoteBadgeBg}};
            color: {{.Theme.NoteBadgeFg}};
        }

        .result-item {
            background: {{.Theme.Surface}};
            border: 1px solid {{.Theme.Border}};
            border-radius: 0.5rem;
            margin-bottom: 1rem;
            overflow: hidden;
            transition: all 0.2s;
            box-shadow: 0 1px 3px rgba(0, 0, 0, 0.05);
        }

        .result-item:hover {
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.1);
            border-color: {{.Theme.BorderHard}};
        }

        .result-header {
            padding: 1.5rem;
            border-left: 4px solid {{.Theme.Accent}};
            background: {{.Theme.SurfaceAlt}};
        }

        .result-item.error .result-header {
            border-left-color: {{.Theme.Error}};
        }

        .result-item.warning .result-header {
            border-left-color: {{.Theme.Warning}};
        }

        .result-item.note .result-header {
            border-left-color: {{.Theme.Note}};
        }

        .result-message {
            font-size: 1.1rem;
            font-weight: 600;
            color: {{.Theme.Heading}};
            margin-bottom: 0.75rem;
        }

        .result-rule {
            font-family: 'Courier New', monospace;
            font-size: 0.85rem;
            color: {{.Theme.Muted}};
            word-break: break-all;
        }

        .result-body {
            padding: 1.5rem;
        }

        .result-section {
            margin-bottom: 1.5rem;
        }

        .result-section:last-child {
            margin-bottom: 0;
        }

        .result-section-title {
            font-size: 0.95rem;
            font-weight: 600;
            color: {{.Theme.Heading}};
            margin-bottom: 0.5rem;
            text-transform: uppercase;
            letter-spacing: 0.03em;
        }

        .result-section-content {
            background: {{.Theme.Background}};
            padding: 1rem;
            border-radius: 0.375rem;
            border-left: 3px solid {{.Theme.Accent}};
        }

        .result-item.error .result-section-content {
            border-left-color: {{.Theme.Error}};
        }

        .result-item.warning .result-section-content {
            border-left-color: {{.Theme.Warning}};
        }

        .result-item.note .result-section-content {
            border-left-color: {{.Theme.Note}};
        }

        .location-info {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
            gap: 1rem;
            margin-bottom: 0.5rem;
        }

        .location-item {
            font-size: 0.9rem;
        }

        .location-label {
            font-weight: 600;
            color: {{.Theme.Heading}};
        }

        .location-value {
            color: {{.Theme.Muted}};
            font-family: 'Courier New', monospace;
        }

        .code-snippet {
            background: {{.Theme.CodeBg}};
            color: {{.Theme.CodeFg}};
            padding: 1rem;
            border-radius: 0.375rem;
            overflow-x: auto;
            font-family: 'Courier New', monospace;
            font-size: 0.85rem;
            line-height: 1.5;
            white-space: pre-wrap;
            word-wrap: break-word;
        }

        .tags {
            display: flex;
            flex-wrap: wrap;
            gap: 0.5rem;
        }

        .tag {
            background: {{.Theme.Border}};
            color: {{.Theme.Heading}};
            padding: 0.25rem 0.75rem;
            border-radius: 0.25rem;
            font-size: 0.8rem;
            border: 1px solid {{.Theme.BorderHard}};
        }

        .empty-state {
            background: {{.Theme.SurfaceAlt}};
            padding: 2rem;
            border-radius: 0.5rem;
            text-align: center;
            color: {{.Theme.Muted}};
        }

        .notification-item {
            background: {{.Theme.NotifyBg}};
            border: 1px solid {{.Theme.Warning}};
            border-left: 4px solid {{.Theme.Warning}};
            padding: 1rem;
            margin-bottom: 1rem;
            border-radius: 0.375rem;
            color: {{.Theme.NotifyFg}};
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 1rem;
            background: {{.Theme.Surface}};
            border-radius: 0.375rem;
            overflow: hidden;
            box-shadow: 0 1px 3px rgba(0, 0, 0, 0.05);
        }

        th {
            background: {{.Theme.Background}};
            padding: 1rem;
            text-align: left;
            font-weight: 600;
            color: {{.Theme.Heading}};
            border-bottom: 2px solid {{.Theme.Border}};
        }

        td {
            padding: 1rem;
            border-bottom: 1px solid {{.Theme.Border}};
        }

        tr:last-child td {
            border-bottom: none;
        }

        tr:hover {
            background: {{.Theme.SurfaceAlt}};
        }

        .file-name {
            font-family: 'Courier New', monospace;
            color: {{.Theme.Accent}};
            word-break: break-all;
        }

        footer {
            margin-top: 3rem;
            padding-top: 2rem;
            border-top: 1px solid {{.Theme.Border}};
            text-align: center;
            color: {{.Theme.Muted}};
            font-size: 0.9rem;
        }

        @media print {
            body {
                background: white;
            }

            .result-item {
                page-break-inside: avoid;
            }

            header {
                color: {{.Theme.Heading}};
                background: {{.Theme.Background}};
                border: 1px solid {{.Theme.BorderHard}};
            }
        }

        @media (max-width: 768px) {
            .container {
                padding: 1rem;
            }

            header {
                padding: 1.5rem;
            }

            h1 {
                font-size: 1.5rem;
            }

            .stats-grid {
                grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
            }

            .location-info {
                grid-template-columns: 1fr;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>📊 SARIF Analysis Report</h1>
            <p>Static Analysis Results Interchange Format</p>
            <div class="report-meta">
                <p><strong>File:</strong> {{.Title}}</p>
                <p><strong>Generated:</strong> {{.Generated}}</p>
            </div>
        </header>

        <div class="stats-grid">
            <div class="stat-card">
                <div class="stat-label">Total Issues</div>
                <div class="stat-value">{{.Stats.Total}}</div>
            </div>
            <div class="stat-card error">
                <div class="stat-label">Errors</div>
                <div class="stat-value">{{.Stats.Errors}}</div>
            </div>
            <div class="stat-card warning">
                <div class="stat-label">Warnings</div>
                <div class="stat-value">{{.Stats.Warnings}}</div>
            </div>
            <div class="stat-card note">
                <div class="stat-label">Notes</div>
                <div class="stat-value">{{.Stats.Notes}}</div>
            </div>
            <div class="stat-card">
                <div class="stat-label">Affected Files</div>
                <div class="stat-value">{{.Stats.Files}}</div>
            </div>
            <div class="stat-card">
                <div class="stat-label">Unique Rules</div>
                <div class="stat-value">{{.Stats.Rules}}</div>
            </div>
        </div>
{{if .Notifications}}
        <div class="section">
            <div class="section-title warning">
                ⚠️ Build/Syntax Issues ({{len .Notifications}})
            </div>
            <div>
{{range .Notifications}}
                <div class="notification-item">
                    {{.}}
                </div>
{{end}}
            </div>
        </div>
{{end}}
{{range .Sections}}
        <div class="section">
            <div class="section-title {{.Level}}">
                {{.Icon}} {{.Heading}} ({{.Count}})
            </div>
{{range .Items}}
            <div class="result-item {{.Level}}">
                <div class="result-header">
                    <div class="result-message">
                        {{.Message}}
                    </div>
                    <div class="result-rule">
                        Rule: {{.RuleID}}
                    </div>
                </div>
                <div class="result-body">
                    <div class="result-section">
                        <div class="result-section-title">📍 Location</div>
                        <div class="result-section-content">
                            <div class="location-info">
                                <div class="location-item">
                                    <div class="location-label">File:</div>
                                    <div class="location-value file-name">{{.Location.File}}</div>
                                </div>
                                <div class="location-item">
                                    <div class="location-label">Line:</div>
                                    <div class="location-value">{{.Location.StartLine}}</div>
                                </div>
                                <div class="location-item">
                                    <div class="location-label">Column:</div>
                                    <div class="location-value">{{.Location.StartCol}}</div>
                                </div>
                            </div>
                        </div>
                    </div>
{{if .Location.Snippet}}
                    <div class="result-section">
                        <div class="result-section-title">💻 Code</div>
                        <div class="code-snippet">{{.Location.Snippet}}</div>
                    </div>
{{end}}
{{if .Tags}}
                    <div class="result-section">
                        <div class="result-section-title">🏷️ Tags</div>
                        <div class="tags">
{{range .Tags}}
                            <span class="tag">{{.}}</span>
{{end}}
                        </div>
                    </div>
{{end}}
                </div>
            </div>
{{end}}
        </div>
{{end}}
{{if .Files}}
        <div class="section">
            <div class="section-title">
                📁 Issues by File
            </div>
            <table>
                <thead>
                    <tr>
                        <th>File</th>
                        <th style="text-align: right;">Count</th>
                    </tr>
                </thead>
                <tbody>
{{range .Files}}
                    <tr>
                        <td class="file-name">{{.URI}}</td>
                        <td style="text-align: right;"><strong>{{.Count}}</strong></td>
                    </tr>
{{end}}
                </tbody>
            </table>
        </div>
{{end}}
        <footer>
            <p>Generated by SARIF to HTML Converter</p>
        </footer>
    </div>
</body>
</html>
`
