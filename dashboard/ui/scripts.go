package ui

// GetScripts returns the JavaScript for the dashboard
func GetScripts() string {
	return `
        // Sidebar collapse toggles server-side via cookie, then re-renders
        document.addEventListener('DOMContentLoaded', function() {
            var toggle = document.getElementById('sidebar-toggle');
            if (toggle) {
                toggle.addEventListener('click', function() {
                    fetch('/dashboard/sidebar/toggle', {method: 'POST'})
                        .then(function() { location.reload(); });
                });
            }

            // Table live search, input id maps to table id
            [['terms-search', 'terms-table'], ['standards-search', 'standards-table']].forEach(function(pair) {
                var search = document.getElementById(pair[0]);
                if (!search) {
                    return;
                }
                search.addEventListener('input', function() {
                    var needle = this.value.toLowerCase();
                    document.querySelectorAll('#' + pair[1] + ' tbody tr').forEach(function(row) {
                        row.style.display = row.textContent.toLowerCase().indexOf(needle) >= 0 ? '' : 'none';
                    });
                });
            });
        });
    `
}

// GetBootstrapJS returns the Bootstrap JavaScript CDN URL
func GetBootstrapJS() string {
	return `https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/js/bootstrap.bundle.min.js`
}

// GetBootstrapJSIntegrity returns the integrity hash for Bootstrap JS
func GetBootstrapJSIntegrity() string {
	return `sha384-BBtl+eGJRgqQAUMxJ7pMwbEyER4l1g+O15P+16Ep7Q9Q+zqX6gSbd85u4mG4QzX+`
}
