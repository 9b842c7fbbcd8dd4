package ui

// GetStyles returns the CSS styles for the dashboard
// This can be easily moved to an external .css file in the future
func GetStyles() string {
	return `
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background-color: #f1f5f9;
            margin: 0;
        }
        .app-layout {
            display: flex;
            min-height: 100vh;
        }
        .sidebar {
            background: #0f172a;
            color: #e2e8f0;
            flex-shrink: 0;
            transition: width 0.2s ease, min-width 0.2s ease;
            overflow-x: hidden;
        }
        .sidebar-header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 1rem 0.75rem;
            border-bottom: 1px solid #1e293b;
        }
        .sidebar-brand {
            font-weight: 700;
            font-size: 1.1rem;
            white-space: nowrap;
        }
        .sidebar-toggle {
            background: none;
            border: none;
            color: #94a3b8;
            font-size: 1rem;
            padding: 0.25rem 0.4rem;
            border-radius: 6px;
        }
        .sidebar-toggle:hover {
            background: #1e293b;
            color: #e2e8f0;
        }
        .sidebar-nav {
            display: flex;
            flex-direction: column;
            padding: 0.75rem 0.5rem;
            gap: 0.25rem;
        }
        .sidebar-link {
            display: flex;
            align-items: center;
            gap: 0.75rem;
            color: #94a3b8;
            text-decoration: none;
            padding: 0.6rem 0.75rem;
            border-radius: 8px;
            white-space: nowrap;
        }
        .sidebar-link:hover {
            background: #1e293b;
            color: #e2e8f0;
        }
        .sidebar-link.active {
            background: #1d4ed8;
            color: #ffffff;
        }
        .request-review-submenu {
            display: flex;
            flex-direction: column;
            margin-left: 2rem;
            gap: 0.15rem;
        }
        .submenu-link {
            color: #94a3b8;
            text-decoration: none;
            padding: 0.35rem 0.75rem;
            border-radius: 6px;
            font-size: 0.9rem;
            white-space: nowrap;
        }
        .submenu-link:hover {
            background: #1e293b;
            color: #e2e8f0;
        }
        .main-content {
            flex: 1;
            min-width: 0;
            padding: 1.5rem 2rem;
        }
        .main-container {
            background: white;
            border-radius: 12px;
            box-shadow: 0 2px 12px rgba(15,23,42,0.06);
            padding: 1.5rem;
        }
        .card {
            border: 1px solid #e2e8f0;
            border-radius: 10px;
            box-shadow: 0 1px 4px rgba(15,23,42,0.04);
        }
        .card-header {
            background: #ffffff;
            border-bottom: 1px solid #e2e8f0;
            font-weight: 600;
            color: #0f172a;
        }
        .table thead {
            background: #f8fafc;
            color: #475569;
        }
        .table tbody tr:hover {
            background-color: #f8fafc;
        }
        .badge {
            padding: 0.4em 0.8em;
            font-weight: 500;
        }
        .page-title h3 {
            color: #0f172a;
            font-weight: 700;
        }
        .rate-badge {
            min-width: 4.5rem;
            display: inline-block;
            text-align: center;
        }
        .term-accordion .accordion-button {
            font-weight: 600;
            color: #0f172a;
        }
        .evidence-excerpt {
            background: #f8fafc;
            border-left: 3px solid #3b82f6;
            padding: 0.75rem 1rem;
            font-style: italic;
            color: #334155;
            border-radius: 0 8px 8px 0;
        }
        .attestation-progress {
            height: 0.6rem;
        }
    `
}
